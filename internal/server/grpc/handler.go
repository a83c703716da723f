package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vkozyrev/floodwatch/internal/common"
	pb "github.com/vkozyrev/floodwatch/internal/proto"
	"github.com/vkozyrev/floodwatch/internal/roles"
	"github.com/vkozyrev/floodwatch/internal/server/models"
	"github.com/vkozyrev/floodwatch/internal/server/services"
)

// domainError maps the shared sentinel errors onto gRPC status codes. The
// validation sentinels keep their exact message on the wire so clients can
// match them; everything unrecognized collapses to Internal.
func domainError(err error) error {
	switch {
	case errors.Is(err, common.ErrorInvalidEmailFormat):
		return status.Error(codes.InvalidArgument, common.ErrorInvalidEmailFormat.Error())
	case errors.Is(err, common.ErrorWeakPassword):
		return status.Error(codes.InvalidArgument, common.ErrorWeakPassword.Error())
	case errors.Is(err, common.ErrorInvalidArgument), errors.Is(err, common.ErrorInvalidRole):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorAccountDisabled):
		return status.Error(codes.FailedPrecondition, "account disabled")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.PermissionDenied, "permission denied")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// identityError is domainError with one difference: a failed credential check
// is Unauthenticated, not PermissionDenied.
func identityError(err error) error {
	if errors.Is(err, common.ErrorUnauthorized) {
		return status.Error(codes.Unauthenticated, "unauthorized")
	}
	return domainError(err)
}

func sessionResponse(account *models.Account, pair *services.TokenPair) *pb.SessionResponse {
	return &pb.SessionResponse{Session: &pb.Session{
		Id:           account.ID,
		DisplayName:  account.DisplayName,
		Email:        account.Email,
		PhotoUrl:     account.PhotoURL,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}}
}

func profileToProto(p *models.Profile) *pb.User {
	return &pb.User{
		Id:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		PhotoUrl:    p.PhotoURL,
		Role:        string(p.Role),
		City:        p.City,
		County:      p.County,
		CreatedAtMs: p.CreatedAt.UnixMilli(),
		UpdatedAtMs: p.UpdatedAt.UnixMilli(),
	}
}

func protoToProfile(u *pb.User) *models.Profile {
	return &models.Profile{
		ID:       u.Id,
		Name:     u.Name,
		Email:    u.Email,
		PhotoURL: u.PhotoUrl,
		Role:     roles.Role(u.Role),
		City:     u.City,
		County:   u.County,
	}
}

func reportToProto(r *models.Report) *pb.Report {
	return &pb.Report{
		Id:           r.ID,
		UserId:       r.UserID,
		UserName:     r.UserName,
		Description:  r.Description,
		WaterLevelCm: r.WaterLevelCM,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		PhotoUrl:     r.PhotoURL,
		Status:       r.Status,
		CreatedAtMs:  r.CreatedAt.UnixMilli(),
	}
}

func protoToReport(r *pb.Report) *models.Report {
	return &models.Report{
		ID:           r.Id,
		UserID:       r.UserId,
		UserName:     r.UserName,
		Description:  r.Description,
		WaterLevelCM: r.WaterLevelCm,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		PhotoURL:     r.PhotoUrl,
		Status:       r.Status,
		CreatedAt:    time.UnixMilli(r.CreatedAtMs),
	}
}

func commentToProto(c *models.Comment) *pb.Comment {
	return &pb.Comment{
		Id:          c.ID,
		ReportId:    c.ReportID,
		UserId:      c.UserID,
		UserName:    c.UserName,
		Body:        c.Body,
		CreatedAtMs: c.CreatedAt.UnixMilli(),
	}
}

// --- identity provider surface ---

func (s *GRPCServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.SessionResponse, error) {
	account, pair, err := s.identity.Register(ctx, req.Email, req.Password, req.DisplayName)
	if err != nil {
		s.logger.Error(ctx, "registration failed", "error", err.Error())
		return nil, identityError(err)
	}

	s.logger.Info(ctx, "account created", "user", account.ID)
	return sessionResponse(account, pair), nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SessionResponse, error) {
	account, pair, err := s.identity.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, identityError(err)
	}
	return sessionResponse(account, pair), nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*pb.SignOutResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.identity.SignOut(ctx, caller); err != nil {
		return nil, identityError(err)
	}
	return &pb.SignOutResponse{}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.SessionResponse, error) {
	account, pair, err := s.identity.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, identityError(err)
	}
	return sessionResponse(account, pair), nil
}

func (s *GRPCServer) SendPasswordReset(ctx context.Context, req *pb.SendPasswordResetRequest) (*pb.SendPasswordResetResponse, error) {
	if err := s.identity.SendPasswordReset(ctx, req.Email); err != nil {
		return nil, identityError(err)
	}
	return &pb.SendPasswordResetResponse{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

// --- document store surface: profiles ---

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	id := req.Id
	if id == "" {
		id = caller
	}

	profile, err := s.users.GetProfile(ctx, id)
	if err != nil {
		return nil, domainError(err)
	}
	return &pb.GetUserResponse{User: profileToProto(profile)}, nil
}

func (s *GRPCServer) SaveUser(ctx context.Context, req *pb.SaveUserRequest) (*pb.SaveUserResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if req.User == nil {
		return nil, status.Error(codes.InvalidArgument, "missing user")
	}

	saved, err := s.users.SaveProfile(ctx, caller, protoToProfile(req.User))
	if err != nil {
		return nil, domainError(err)
	}
	return &pb.SaveUserResponse{User: profileToProto(saved)}, nil
}

// --- document store surface: reports ---

func (s *GRPCServer) CreateReport(ctx context.Context, req *pb.CreateReportRequest) (*pb.CreateReportResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Report == nil {
		return nil, status.Error(codes.InvalidArgument, "missing report")
	}

	created, err := s.reports.Create(ctx, caller, protoToReport(req.Report))
	if err != nil {
		return nil, domainError(err)
	}
	return &pb.CreateReportResponse{Report: reportToProto(created)}, nil
}

func (s *GRPCServer) ListReports(ctx context.Context, req *pb.ListReportsRequest) (*pb.ListReportsResponse, error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}

	list, err := s.reports.List(ctx, req.Status, int(req.Limit))
	if err != nil {
		return nil, domainError(err)
	}

	resp := &pb.ListReportsResponse{}
	for _, r := range list {
		resp.Reports = append(resp.Reports, reportToProto(r))
	}
	return resp, nil
}

func (s *GRPCServer) GetReport(ctx context.Context, req *pb.GetReportRequest) (*pb.GetReportResponse, error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}

	report, err := s.reports.Get(ctx, req.Id)
	if err != nil {
		return nil, domainError(err)
	}
	return &pb.GetReportResponse{Report: reportToProto(report)}, nil
}

func (s *GRPCServer) UpdateReportStatus(ctx context.Context, req *pb.UpdateReportStatusRequest) (*pb.UpdateReportStatusResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := s.reports.UpdateStatus(ctx, caller, req.Id, req.Status)
	if err != nil {
		return nil, domainError(err)
	}
	return &pb.UpdateReportStatusResponse{Report: reportToProto(updated)}, nil
}

func (s *GRPCServer) DeleteReport(ctx context.Context, req *pb.DeleteReportRequest) (*pb.DeleteReportResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.reports.Delete(ctx, caller, req.Id); err != nil {
		return nil, domainError(err)
	}
	return &pb.DeleteReportResponse{}, nil
}

func (s *GRPCServer) AddComment(ctx context.Context, req *pb.AddCommentRequest) (*pb.AddCommentResponse, error) {
	caller, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Comment == nil {
		return nil, status.Error(codes.InvalidArgument, "missing comment")
	}

	created, err := s.reports.AddComment(ctx, caller, req.Comment.ReportId, req.Comment.Body)
	if err != nil {
		return nil, domainError(err)
	}
	return &pb.AddCommentResponse{Comment: commentToProto(created)}, nil
}

func (s *GRPCServer) ListComments(ctx context.Context, req *pb.ListCommentsRequest) (*pb.ListCommentsResponse, error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}

	list, err := s.reports.ListComments(ctx, req.ReportId)
	if err != nil {
		return nil, domainError(err)
	}

	resp := &pb.ListCommentsResponse{}
	for _, c := range list {
		resp.Comments = append(resp.Comments, commentToProto(c))
	}
	return resp, nil
}

// --- object storage surface ---

func (s *GRPCServer) GetPresignedPutUrl(ctx context.Context, req *pb.GetPresignedPutUrlRequest) (*pb.GetPresignedPutUrlResponse, error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}

	key, url, err := s.reports.GetPresignedPutUrl(ctx, req.ContentType)
	if err != nil {
		return nil, domainError(err)
	}
	return &pb.GetPresignedPutUrlResponse{Key: key, Url: url}, nil
}
