package clients

import (
	"fmt"
	"log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	proto "crm-commissions/proto/protogen/commissions"
)

type GRPCClients struct {
	Commissions    proto.CommissionServiceClient
	commissionConn *grpc.ClientConn
}

// NewGRPCClients dials the commission service. Connection happens lazily on the first call.
func NewGRPCClients(commissionTarget string, opts ...grpc.DialOption) (*GRPCClients, error) {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	commissionConn, err := grpc.NewClient(commissionTarget, opts...)
	if err != nil {
		return nil, fmt.Errorf("commission service connection failed: %v", err)
	}

	clients := &GRPCClients{
		Commissions:    proto.NewCommissionServiceClient(commissionConn),
		commissionConn: commissionConn,
	}

	log.Printf("✅ Commission service client ready for %s", commissionTarget)
	return clients, nil
}

func (c *GRPCClients) IsCommissionsServiceHealthy() bool {
	if c == nil || c.commissionConn == nil {
		return false
	}
	switch c.commissionConn.GetState() {
	case connectivity.TransientFailure, connectivity.Shutdown:
		return false
	default:
		return true
	}
}

func (c *GRPCClients) Close() {
	if c.commissionConn != nil {
		c.commissionConn.Close()
	}
}
