package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/vkozyrev/floodwatch/internal/logging"
	pb "github.com/vkozyrev/floodwatch/internal/proto"
	"github.com/vkozyrev/floodwatch/internal/server/models"
	"github.com/vkozyrev/floodwatch/internal/server/services"
)

// identitySvc is the identity-provider surface the handlers need.
type identitySvc interface {
	Register(ctx context.Context, email, plainPassword, displayName string) (*models.Account, *services.TokenPair, error)
	SignIn(ctx context.Context, email, plainPassword string) (*models.Account, *services.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.Account, *services.TokenPair, error)
	SignOut(ctx context.Context, userID string) error
	SendPasswordReset(ctx context.Context, email string) error
}

// userSvc is the profile document-store surface.
type userSvc interface {
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	SaveProfile(ctx context.Context, callerID string, profile *models.Profile) (*models.Profile, error)
}

// reportSvc is the report document-store and photo-upload surface.
type reportSvc interface {
	Create(ctx context.Context, callerID string, report *models.Report) (*models.Report, error)
	List(ctx context.Context, status string, limit int) ([]*models.Report, error)
	Get(ctx context.Context, id string) (*models.Report, error)
	UpdateStatus(ctx context.Context, callerID, id, status string) (*models.Report, error)
	Delete(ctx context.Context, callerID, id string) error
	AddComment(ctx context.Context, callerID, reportID, body string) (*models.Comment, error)
	ListComments(ctx context.Context, reportID string) ([]*models.Comment, error)
	GetPresignedPutUrl(ctx context.Context, contentType string) (string, string, error)
}

type GRPCServer struct {
	pb.UnimplementedFloodWatchServiceServer
	address   string
	identity  identitySvc
	users     userSvc
	reports   reportSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(address string, l logging.Logger, is identitySvc, us userSvc, rs reportSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   address,
		logger:    l.With("module", "grpc_server"),
		identity:  is,
		users:     us,
		reports:   rs,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterFloodWatchServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
