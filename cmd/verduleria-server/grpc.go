package main

import (
	"context"
	"log"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// serviceName is reported by the health service next to the overall status.
const serviceName = "verduleria.Storefront"

func newGRPCServer() (*grpc.Server, *health.Server) {
	s := grpc.NewServer(grpc.UnaryInterceptor(loggingInterceptor))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	reflection.Register(s)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	return s, hs
}

func serveGRPC(s *grpc.Server, addr string, errs chan<- error) (net.Listener, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	go func() {
		log.Printf("[grpc] listening on %s", addr)
		if err := s.Serve(lis); err != nil {
			errs <- err
		}
	}()
	return lis, nil
}

func loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		log.Printf("[grpc] %s err=%v", info.FullMethod, err)
	}
	return resp, err
}
