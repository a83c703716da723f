package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vkozyrev/floodwatch/internal/client/models"
	"github.com/vkozyrev/floodwatch/internal/common"
	pb "github.com/vkozyrev/floodwatch/internal/proto"
	"github.com/vkozyrev/floodwatch/internal/roles"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const rpcTimeout = 12 * time.Second

// GRPCClient implements both the Client and DocumentStore surfaces over one
// connection. Tokens live in memory; the refresh token additionally goes to
// the credential cache by way of SessionToken so a later process can Resume.
type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.FloodWatchServiceClient
	session      *Session
	accessToken  string
	refreshToken string
}

// NewGRPCClient dials the backend endpoint lazily and returns the client.
func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewFloodWatchServiceClient(conn)
	return nil
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current access token and transparently
// rotates the token pair once when the server reports it expired.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated {
		return err
	}
	if st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if s.refreshToken == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
	if rerr != nil {
		return err
	}
	s.adoptSession(resp.Session)

	ctx = withAccessToken(ctx, s.accessToken)
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (s *GRPCClient) adoptSession(sess *pb.Session) {
	if sess == nil {
		return
	}
	s.session = &Session{
		ID:          sess.Id,
		DisplayName: sess.DisplayName,
		Email:       sess.Email,
		PhotoURL:    sess.PhotoUrl,
	}
	s.accessToken = sess.AccessToken
	s.refreshToken = sess.RefreshToken
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) CreateAccount(ctx context.Context, email, password, displayName string) (*Session, error) {
	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	resp, err := s.client.CreateAccount(ctx, &pb.CreateAccountRequest{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.adoptSession(resp.Session)
	return s.session, nil
}

func (s *GRPCClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	resp, err := s.client.SignIn(ctx, &pb.SignInRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.adoptSession(resp.Session)
	return s.session, nil
}

func (s *GRPCClient) Resume(ctx context.Context, refreshToken string) (*Session, error) {
	if refreshToken == "" {
		return nil, ErrNoSession
	}

	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.adoptSession(resp.Session)
	return s.session, nil
}

// SignOut revokes the server session and drops local tokens. The RPC runs
// while the access token is still held so the call authenticates; local
// state is cleared afterwards even if revocation failed.
func (s *GRPCClient) SignOut(ctx context.Context) error {
	token := s.refreshToken
	if token == "" {
		s.session = nil
		s.accessToken = ""
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	_, err := s.client.SignOut(ctx, &pb.SignOutRequest{RefreshToken: token})

	s.session = nil
	s.accessToken = ""
	s.refreshToken = ""

	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) SendPasswordReset(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	if _, err := s.client.SendPasswordReset(ctx, &pb.SendPasswordResetRequest{Email: email}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) CurrentSession() *Session { return s.session }

func (s *GRPCClient) SessionToken() string { return s.refreshToken }

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

// --- document store surface ---

func (s *GRPCClient) GetUser(ctx context.Context, id string) (*models.UserRecord, error) {
	resp, err := s.client.GetUser(ctx, &pb.GetUserRequest{Id: id})
	if err != nil {
		mapped := s.mapError(err)
		// A missing profile is a distinct condition for callers that lazily
		// create one on first sign-in.
		if errors.Is(mapped, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, mapped
	}
	return userFromProto(resp.User), nil
}

func (s *GRPCClient) SaveUser(ctx context.Context, user *models.UserRecord) (*models.UserRecord, error) {
	resp, err := s.client.SaveUser(ctx, &pb.SaveUserRequest{User: userToProto(user)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return userFromProto(resp.User), nil
}

func (s *GRPCClient) CreateReport(ctx context.Context, report *models.Report) (*models.Report, error) {
	resp, err := s.client.CreateReport(ctx, &pb.CreateReportRequest{Report: reportToProto(report)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return reportFromProto(resp.Report), nil
}

func (s *GRPCClient) ListReports(ctx context.Context, status models.ReportStatus, limit int) ([]*models.Report, error) {
	resp, err := s.client.ListReports(ctx, &pb.ListReportsRequest{Status: string(status), Limit: int32(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}
	reports := make([]*models.Report, 0, len(resp.Reports))
	for _, r := range resp.Reports {
		reports = append(reports, reportFromProto(r))
	}
	return reports, nil
}

func (s *GRPCClient) GetReport(ctx context.Context, id string) (*models.Report, error) {
	resp, err := s.client.GetReport(ctx, &pb.GetReportRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return reportFromProto(resp.Report), nil
}

func (s *GRPCClient) UpdateReportStatus(ctx context.Context, id string, status models.ReportStatus) (*models.Report, error) {
	resp, err := s.client.UpdateReportStatus(ctx, &pb.UpdateReportStatusRequest{Id: id, Status: string(status)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return reportFromProto(resp.Report), nil
}

func (s *GRPCClient) DeleteReport(ctx context.Context, id string) error {
	if _, err := s.client.DeleteReport(ctx, &pb.DeleteReportRequest{Id: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) AddComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	resp, err := s.client.AddComment(ctx, &pb.AddCommentRequest{Comment: commentToProto(comment)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return commentFromProto(resp.Comment), nil
}

func (s *GRPCClient) ListComments(ctx context.Context, reportID string) ([]*models.Comment, error) {
	resp, err := s.client.ListComments(ctx, &pb.ListCommentsRequest{ReportId: reportID})
	if err != nil {
		return nil, s.mapError(err)
	}
	comments := make([]*models.Comment, 0, len(resp.Comments))
	for _, c := range resp.Comments {
		comments = append(comments, commentFromProto(c))
	}
	return comments, nil
}

func (s *GRPCClient) PresignedPutURL(ctx context.Context, contentType string) (string, string, error) {
	resp, err := s.client.GetPresignedPutUrl(ctx, &pb.GetPresignedPutUrlRequest{ContentType: contentType})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Key, resp.Url, nil
}

// mapError translates transport errors into the package sentinels. Messages
// carried on InvalidArgument statuses disambiguate the validation cases.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		switch st.Message() {
		case common.ErrorInvalidEmailFormat.Error():
			return ErrInvalidEmail
		case common.ErrorWeakPassword.Error():
			return ErrWeakPassword
		default:
			return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
		}
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrUnauthorized
	case codes.FailedPrecondition:
		return ErrUserDisabled
	case codes.AlreadyExists:
		return ErrEmailInUse
	case codes.NotFound:
		return ErrNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// --- proto conversions ---

func userFromProto(u *pb.User) *models.UserRecord {
	if u == nil {
		return nil
	}
	return &models.UserRecord{
		ID:        u.Id,
		Name:      u.Name,
		Email:     u.Email,
		PhotoURL:  u.PhotoUrl,
		Role:      roles.Role(u.Role),
		City:      u.City,
		County:    u.County,
		CreatedAt: time.UnixMilli(u.CreatedAtMs),
		UpdatedAt: time.UnixMilli(u.UpdatedAtMs),
	}
}

func userToProto(u *models.UserRecord) *pb.User {
	if u == nil {
		return nil
	}
	return &pb.User{
		Id:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhotoUrl:    u.PhotoURL,
		Role:        string(u.Role),
		City:        u.City,
		County:      u.County,
		CreatedAtMs: u.CreatedAt.UnixMilli(),
		UpdatedAtMs: u.UpdatedAt.UnixMilli(),
	}
}

func reportFromProto(r *pb.Report) *models.Report {
	if r == nil {
		return nil
	}
	return &models.Report{
		ID:           r.Id,
		UserID:       r.UserId,
		UserName:     r.UserName,
		Description:  r.Description,
		WaterLevelCM: r.WaterLevelCm,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		PhotoURL:     r.PhotoUrl,
		Status:       models.ReportStatus(r.Status),
		CreatedAt:    time.UnixMilli(r.CreatedAtMs),
	}
}

func reportToProto(r *models.Report) *pb.Report {
	if r == nil {
		return nil
	}
	return &pb.Report{
		Id:           r.ID,
		UserId:       r.UserID,
		UserName:     r.UserName,
		Description:  r.Description,
		WaterLevelCm: r.WaterLevelCM,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		PhotoUrl:     r.PhotoURL,
		Status:       string(r.Status),
		CreatedAtMs:  r.CreatedAt.UnixMilli(),
	}
}

func commentFromProto(c *pb.Comment) *models.Comment {
	if c == nil {
		return nil
	}
	return &models.Comment{
		ID:        c.Id,
		ReportID:  c.ReportId,
		UserID:    c.UserId,
		UserName:  c.UserName,
		Body:      c.Body,
		CreatedAt: time.UnixMilli(c.CreatedAtMs),
	}
}

func commentToProto(c *models.Comment) *pb.Comment {
	if c == nil {
		return nil
	}
	return &pb.Comment{
		Id:          c.ID,
		ReportId:    c.ReportID,
		UserId:      c.UserID,
		UserName:    c.UserName,
		Body:        c.Body,
		CreatedAtMs: c.CreatedAt.UnixMilli(),
	}
}
