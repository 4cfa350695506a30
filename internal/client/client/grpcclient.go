package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/imagefeed/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// IdentityServiceName is the fully-qualified gRPC service exposed by the
// identity gateway.
const IdentityServiceName = "imagefeed.identity.v1.IdentityService"

const (
	methodExchangeCode = "/" + IdentityServiceName + "/ExchangeCode"
	methodGetProfile   = "/" + IdentityServiceName + "/GetProfile"
	methodGetAvatarURL = "/" + IdentityServiceName + "/GetAvatarURL"

	clientIDHeaderName = "client_id"
)

type GRPCClient struct {
	endpointURL string
	clientID    string
	redirectURI string
	timeout     time.Duration
	conn        *grpc.ClientConn
	opts        []grpc.DialOption
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// clientIDInterceptor stamps every call with the registered application id
// so the gateway can pick the right upstream OAuth client.
func (s *GRPCClient) clientIDInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx = metadata.AppendToOutgoingContext(ctx, clientIDHeaderName, s.clientID)
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient prepares a client for the gateway at endpointURL. extra dial
// options are appended after the defaults (insecure transport and the
// client-id interceptor); tests use them to plug in a bufconn dialer. Each call
// is bounded by timeout; zero leaves the caller's deadline alone.
func NewGRPCClient(endpointURL, clientID, redirectURI string, timeout time.Duration, extra ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, clientID: clientID, redirectURI: redirectURI, timeout: timeout}
	c.opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.clientIDInterceptor),
	}, extra...)

	conn, err := grpc.NewClient(endpointURL, c.opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return c, nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{
		"code":         code,
		"redirect_uri": s.redirectURI,
	})
	if err != nil {
		return "", err
	}

	resp := &structpb.Struct{}
	if err := s.conn.Invoke(ctx, methodExchangeCode, req, resp); err != nil {
		return "", s.mapError(err)
	}

	token := stringField(resp, "access_token")
	if token == "" {
		return "", fmt.Errorf("%w: missing access_token", ErrBadResponse)
	}
	return token, nil
}

func (s *GRPCClient) GetProfile(ctx context.Context, accessToken string) (*ProfileResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp := &structpb.Struct{}
	if err := s.conn.Invoke(withAccessToken(ctx, accessToken), methodGetProfile, &structpb.Struct{}, resp); err != nil {
		return nil, s.mapError(err)
	}

	return &ProfileResponse{
		UserName:  stringField(resp, "username"),
		FirstName: stringField(resp, "first_name"),
		LastName:  stringField(resp, "last_name"),
		Bio:       stringField(resp, "bio"),
	}, nil
}

func (s *GRPCClient) GetAvatarURL(ctx context.Context, accessToken string, userName string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{"username": userName})
	if err != nil {
		return "", err
	}

	resp := &structpb.Struct{}
	if err := s.conn.Invoke(withAccessToken(ctx, accessToken), methodGetAvatarURL, req, resp); err != nil {
		return "", s.mapError(err)
	}

	avatar := stringField(resp, "avatar_url")
	if avatar == "" {
		return "", fmt.Errorf("%w: missing avatar_url", ErrBadResponse)
	}
	return avatar, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func stringField(st *structpb.Struct, key string) string {
	v, ok := st.GetFields()[key]
	if !ok {
		return ""
	}
	return v.GetStringValue()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
