package vm

import (
	"encoding/json"

	"github.com/coschain/mide-token/config"
	"github.com/coschain/mide-token/contract"
	"github.com/coschain/mide-token/iservices"
	"github.com/coschain/mide-token/node"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	_ Contract        = (*contract.EntryPoints)(nil)
	_ iservices.IHost = (*HostService)(nil)
)

// HostService runs the token contract inside a node, on top of the database service.
type HostService struct {
	*Host

	ctx     *node.ServiceContext
	code    Contract
	db      iservices.IDatabaseService
	logger  *logrus.Logger
	genesis string
	node    *node.Node
}

func New(ctx *node.ServiceContext) (*HostService, error) {
	return NewWithContract(ctx, contract.NewEntryPoints(contract.NewStandard()))
}

func NewWithContract(ctx *node.ServiceContext, code Contract) (*HostService, error) {
	s, err := ctx.Service(iservices.DbServerName)
	if err != nil {
		return nil, errors.Wrap(err, "host needs the database service")
	}
	genesis := ctx.Config().Genesis
	if genesis != "" {
		genesis = ctx.ResolvePath(genesis)
	}
	return &HostService{
		ctx:     ctx,
		code:    code,
		db:      s.(iservices.IDatabaseService),
		genesis: genesis,
	}, nil
}

func (s *HostService) Start(n *node.Node) error {
	s.logger = n.Log
	host, err := NewHost(s.db.Database(), s.code, s.ctx.Config().ChainId,
		WithEventBus(n.EvBus), WithLogger(n.Log))
	if err != nil {
		return err
	}
	s.Host = host
	s.node = n
	if err = n.EvBus.Subscribe(TopicCommitted, s.onCommitted); err != nil {
		return err
	}
	if s.genesis != "" {
		if err = s.applyGenesis(); err != nil {
			return err
		}
	}
	s.logger.WithField("height", host.Block().Height).Info("contract host started")
	return nil
}

func (s *HostService) applyGenesis() error {
	existing, err := s.Contracts()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	g, err := config.LoadGenesisFile(s.genesis)
	if err != nil {
		return err
	}
	for i := range g.Contracts {
		c := &g.Contracts[i]
		msg, err := c.InstantiateMsg()
		if err != nil {
			return errors.Wrapf(err, "genesis contract %s", c.Symbol)
		}
		data, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		addr, _, err := s.Instantiate(c.Sender, data)
		if err != nil {
			return errors.Wrapf(err, "instantiate genesis contract %s", c.Symbol)
		}
		s.logger.WithFields(logrus.Fields{"contract": addr, "symbol": c.Symbol}).Info("genesis contract instantiated")
	}
	return nil
}

// onCommitted reports committed calls from the node's main loop, off the host's lock.
func (s *HostService) onCommitted(ev *CallEvent) {
	s.node.MainLoop.Post(func() {
		fields := logrus.Fields{"kind": ev.Kind, "contract": ev.Contract, "height": ev.Block.Height}
		if ev.Response != nil {
			for _, attr := range ev.Response.Attributes {
				fields["attr."+attr.Key] = attr.Value
			}
		}
		s.logger.WithFields(fields).Info("committed")
	})
}

func (s *HostService) Stop() error {
	if s.node != nil {
		_ = s.node.EvBus.Unsubscribe(TopicCommitted, s.onCommitted)
		s.node = nil
	}
	s.Host = nil
	return nil
}
