package repomanager

import (
	"context"
	"database/sql"

	"github.com/vkozyrev/floodwatch/internal/dbx"
	"github.com/vkozyrev/floodwatch/internal/server/repositories/accounts"
	"github.com/vkozyrev/floodwatch/internal/server/repositories/comments"
	"github.com/vkozyrev/floodwatch/internal/server/repositories/profiles"
	"github.com/vkozyrev/floodwatch/internal/server/repositories/refreshtokens"
	"github.com/vkozyrev/floodwatch/internal/server/repositories/reports"
	"github.com/vkozyrev/floodwatch/internal/server/repositories/resettokens"
)

// RepositoryManager vends repository implementations bound to a DBTX, so
// services can run several repositories inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	ResetTokens(db dbx.DBTX) resettokens.Repository
	Reports(db dbx.DBTX) reports.Repository
	Comments(db dbx.DBTX) comments.Repository
}
