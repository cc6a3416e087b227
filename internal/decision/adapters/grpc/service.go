package grpc

// service.go describes the DecisionEngine service by hand. Messages are plain
// structs carried by the JSON codec.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	serviceName           = "loandecision.v1.DecisionEngine"
	getDecisionFullMethod = "/" + serviceName + "/GetDecision"
)

// GetDecisionRequest mirrors the HTTP request body.
type GetDecisionRequest struct {
	PersonalCode *string `json:"personalCode"`
	LoanAmount   *int    `json:"loanAmount"`
	LoanPeriod   *int    `json:"loanPeriod"`
}

// GetDecisionResponse mirrors the HTTP response body.
type GetDecisionResponse struct {
	Response   bool   `json:"response"`
	LoanAmount *int   `json:"loanAmount"`
	LoanPeriod *int   `json:"loanPeriod"`
	Exact      bool   `json:"exact"`
	Reason     string `json:"reason,omitempty"`
	Message    string `json:"message"`
}

// DecisionEngineServer is the server API for the DecisionEngine service.
type DecisionEngineServer interface {
	GetDecision(context.Context, *GetDecisionRequest) (*GetDecisionResponse, error)
	mustEmbedUnimplementedDecisionEngineServer()
}

// UnimplementedDecisionEngineServer provides forward-compatible default implementations.
type UnimplementedDecisionEngineServer struct{}

func (UnimplementedDecisionEngineServer) GetDecision(context.Context, *GetDecisionRequest) (*GetDecisionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDecision not implemented")
}
func (UnimplementedDecisionEngineServer) mustEmbedUnimplementedDecisionEngineServer() {}

// RegisterDecisionEngineServer registers srv with the gRPC server.
func RegisterDecisionEngineServer(s grpclib.ServiceRegistrar, srv DecisionEngineServer) {
	s.RegisterService(&decisionEngineServiceDesc, srv)
}

var decisionEngineServiceDesc = grpclib.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*DecisionEngineServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "GetDecision", Handler: getDecisionHandler},
	},
	Streams: []grpclib.StreamDesc{},
}

func getDecisionHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
	in := new(GetDecisionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DecisionEngineServer).GetDecision(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: getDecisionFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DecisionEngineServer).GetDecision(ctx, req.(*GetDecisionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DecisionEngineClient is the client API for the DecisionEngine service.
type DecisionEngineClient interface {
	GetDecision(ctx context.Context, in *GetDecisionRequest, opts ...grpclib.CallOption) (*GetDecisionResponse, error)
}

type decisionEngineClient struct {
	cc grpclib.ClientConnInterface
}

// NewDecisionEngineClient returns a client that always selects the JSON codec.
func NewDecisionEngineClient(cc grpclib.ClientConnInterface) DecisionEngineClient {
	return &decisionEngineClient{cc: cc}
}

func (c *decisionEngineClient) GetDecision(ctx context.Context, in *GetDecisionRequest, opts ...grpclib.CallOption) (*GetDecisionResponse, error) {
	out := new(GetDecisionResponse)
	opts = append([]grpclib.CallOption{grpclib.CallContentSubtype(codecName)}, opts...)
	if err := c.cc.Invoke(ctx, getDecisionFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
