package clients

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"

	proto "crm-commissions/proto/protogen/commissions"
)

type stubServer struct {
	proto.UnimplementedCommissionServiceServer
	got *proto.GenererBordereauRequest
}

func (s *stubServer) GenererBordereau(_ context.Context, req *proto.GenererBordereauRequest) (*proto.GenererBordereauResponse, error) {
	s.got = req
	if req.Periode == "" {
		return nil, status.Error(codes.InvalidArgument, "periode is required")
	}
	return &proto.GenererBordereauResponse{
		Bordereau: &proto.Bordereau{
			Id: "b-1", Periode: req.Periode, TotalNetAPayer: "-40.00",
			CreatedAt: timestamppb.New(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)),
		},
		Summary: &proto.BordereauSummary{NombreCommissions: 2, TotalNet: "-40.00"},
	}, nil
}

func dial(t *testing.T, srv proto.CommissionServiceServer, opts ...grpc.ServerOption) *GRPCClients {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(opts...)
	proto.RegisterCommissionServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	clients, err := NewGRPCClients("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(clients.Close)
	return clients
}

func TestRoundTripOverProtobuf(t *testing.T) {
	srv := &stubServer{}
	clients := dial(t, srv)

	resp, err := clients.Commissions.GenererBordereau(context.Background(), &proto.GenererBordereauRequest{OrganisationId: "org-1", ApporteurId: "app-1", Periode: "2026-02"})
	require.NoError(t, err)
	assert.Equal(t, "b-1", resp.Bordereau.Id)
	assert.Equal(t, "-40.00", resp.Bordereau.TotalNetAPayer)
	assert.Equal(t, int32(2), resp.Summary.NombreCommissions)
	assert.True(t, resp.Bordereau.CreatedAt.AsTime().Equal(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "app-1", srv.got.ApporteurId)
	assert.True(t, clients.IsCommissionsServiceHealthy())
}

func TestStatusErrorsCrossTheWire(t *testing.T) {
	clients := dial(t, &stubServer{})

	_, err := clients.Commissions.GenererBordereau(context.Background(), &proto.GenererBordereauRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = clients.Commissions.GetContestations(context.Background(), &proto.GetContestationsRequest{OrganisationId: "org-1"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestInterceptorSeesFullMethod(t *testing.T) {
	var seen string
	interceptor := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		seen = info.FullMethod
		return handler(ctx, req)
	}
	clients := dial(t, &stubServer{}, grpc.UnaryInterceptor(interceptor))

	_, err := clients.Commissions.GenererBordereau(context.Background(), &proto.GenererBordereauRequest{Periode: "2026-02"})
	require.NoError(t, err)
	assert.Equal(t, proto.CommissionService_GenererBordereau_FullMethodName, seen)
}

func TestServiceDescListsEveryMethod(t *testing.T) {
	assert.Len(t, proto.CommissionService_ServiceDesc.Methods, 18)
	names := map[string]bool{}
	for _, m := range proto.CommissionService_ServiceDesc.Methods {
		names[m.MethodName] = true
	}
	for _, name := range []string{"PreselectionnerLignes", "RecalculerTotauxBordereau", "GetContestations", "GetRecurrences", "GetRecurrencesByContrat", "GetReportsNegatifs"} {
		assert.True(t, names[name], name)
	}
}

func TestNilClientsAreUnhealthy(t *testing.T) {
	var clients *GRPCClients
	assert.False(t, clients.IsCommissionsServiceHealthy())
}
