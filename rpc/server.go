package rpc

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/coschain/mide-token/iservices"
	"github.com/coschain/mide-token/node"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

// GatewayService exposes the host service of a node over HTTP.
type GatewayService struct {
	ctx    *node.ServiceContext
	host   iservices.IHost
	listen string
	log    *logrus.Logger

	server   *http.Server
	listener net.Listener
}

func NewGatewayService(ctx *node.ServiceContext) (*GatewayService, error) {
	s, err := ctx.Service(iservices.HostServerName)
	if err != nil {
		return nil, errors.Wrap(err, "gateway needs the host service")
	}
	gin.SetMode(gin.ReleaseMode)
	return &GatewayService{ctx: ctx, host: s.(iservices.IHost), listen: ctx.Config().HTTPListen}, nil
}

func (s *GatewayService) Start(n *node.Node) error {
	s.log = n.Log
	if s.listen == "" {
		s.log.Info("http gateway disabled")
		return nil
	}
	cfg := s.ctx.Config()
	gateway := NewGateway(s.host, s.log, cfg.HTTPCors, cfg.HTTPLimit)

	listener, err := net.Listen("tcp", s.listen)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", s.listen)
	}
	s.listener = listener
	s.server = &http.Server{Handler: gateway.Handler()}
	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.WithError(err).Error("http gateway stopped")
		}
	}()
	s.log.WithField("listen", listener.Addr().String()).Info("http gateway started")
	return nil
}

// Addr returns the bound address, nil while the gateway is not serving.
func (s *GatewayService) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *GatewayService) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := s.server.Shutdown(ctx)
	s.server, s.listener = nil, nil
	return err
}
