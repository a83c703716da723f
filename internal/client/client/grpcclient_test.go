package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/vkozyrev/floodwatch/internal/proto"
)

// fakeServiceClient overrides only the RPCs a test needs; calling anything
// else panics through the embedded nil interface.
type fakeServiceClient struct {
	pb.FloodWatchServiceClient

	signOutFn   func(*pb.SignOutRequest) (*pb.SignOutResponse, error)
	getUserFn   func(*pb.GetUserRequest) (*pb.GetUserResponse, error)
	getReportFn func(*pb.GetReportRequest) (*pb.GetReportResponse, error)
}

func (f *fakeServiceClient) SignOut(ctx context.Context, in *pb.SignOutRequest, opts ...grpc.CallOption) (*pb.SignOutResponse, error) {
	return f.signOutFn(in)
}

func (f *fakeServiceClient) GetUser(ctx context.Context, in *pb.GetUserRequest, opts ...grpc.CallOption) (*pb.GetUserResponse, error) {
	return f.getUserFn(in)
}

func (f *fakeServiceClient) GetReport(ctx context.Context, in *pb.GetReportRequest, opts ...grpc.CallOption) (*pb.GetReportResponse, error) {
	return f.getReportFn(in)
}

func TestSignOut_RevokesWhileStillAuthenticated(t *testing.T) {
	c := &GRPCClient{
		session:      &Session{ID: "u-1"},
		accessToken:  "access-1",
		refreshToken: "refresh-1",
	}

	var tokenAtCall, sentRefresh string
	c.client = &fakeServiceClient{
		signOutFn: func(in *pb.SignOutRequest) (*pb.SignOutResponse, error) {
			tokenAtCall = c.accessToken
			sentRefresh = in.RefreshToken
			return &pb.SignOutResponse{}, nil
		},
	}

	require.NoError(t, c.SignOut(context.Background()))

	// The access token must still be attached when the revocation RPC goes
	// out, otherwise the server rejects the call as anonymous.
	require.Equal(t, "access-1", tokenAtCall)
	require.Equal(t, "refresh-1", sentRefresh)

	require.Nil(t, c.session)
	require.Empty(t, c.accessToken)
	require.Empty(t, c.refreshToken)
}

func TestSignOut_ClearsTokensEvenWhenRevocationFails(t *testing.T) {
	c := &GRPCClient{
		session:      &Session{ID: "u-1"},
		accessToken:  "access-1",
		refreshToken: "refresh-1",
	}
	c.client = &fakeServiceClient{
		signOutFn: func(*pb.SignOutRequest) (*pb.SignOutResponse, error) {
			return nil, status.Error(codes.Unavailable, "backend down")
		},
	}

	err := c.SignOut(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)

	require.Nil(t, c.session)
	require.Empty(t, c.accessToken)
	require.Empty(t, c.refreshToken)
}

func TestSignOut_NoSessionSkipsRPC(t *testing.T) {
	calls := 0
	c := &GRPCClient{accessToken: "stale"}
	c.client = &fakeServiceClient{
		signOutFn: func(*pb.SignOutRequest) (*pb.SignOutResponse, error) {
			calls++
			return &pb.SignOutResponse{}, nil
		},
	}

	require.NoError(t, c.SignOut(context.Background()))
	require.Zero(t, calls)
	require.Empty(t, c.accessToken)
}

func TestGetUser_MissingProfile(t *testing.T) {
	c := &GRPCClient{}
	c.client = &fakeServiceClient{
		getUserFn: func(*pb.GetUserRequest) (*pb.GetUserResponse, error) {
			return nil, status.Error(codes.NotFound, "no such profile")
		},
	}

	_, err := c.GetUser(context.Background(), "u-1")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetReport_MissingStaysNotFound(t *testing.T) {
	c := &GRPCClient{}
	c.client = &fakeServiceClient{
		getReportFn: func(*pb.GetReportRequest) (*pb.GetReportResponse, error) {
			return nil, status.Error(codes.NotFound, "no such report")
		},
	}

	_, err := c.GetReport(context.Background(), "r-1")
	require.ErrorIs(t, err, ErrNotFound)
	require.NotErrorIs(t, err, ErrUserNotFound)
}
