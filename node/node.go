package node

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/coschain/mide-token/common/eventloop"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Node is a container and manager of services
type Node struct {
	config *Config

	MainLoop *eventloop.EventLoop
	EvBus    EventBus.Bus
	Log      *logrus.Logger

	serviceNames []string
	services     map[string]Service
	serviceFuncs []NamedServiceConstructor // registered services store into this slice

	lock sync.RWMutex
}

type NamedServiceConstructor struct {
	name        string
	constructor ServiceConstructor
}

func New(conf *Config) (*Node, error) {
	confCopy := *conf
	conf = &confCopy
	if conf.DataDir != "" {
		dir, err := filepath.Abs(conf.DataDir)
		if err != nil {
			return nil, err
		}
		conf.DataDir = dir
	}
	// the instance name becomes a folder of the data directory
	if strings.ContainsAny(conf.Name, `/\`) {
		return nil, errors.New(`Config.Name must not contain '/' or '\'`)
	}
	return &Node{
		config:       conf,
		serviceNames: []string{},
		serviceFuncs: []NamedServiceConstructor{},
		Log:          logrus.New(),
	}, nil
}

func (n *Node) Config() *Config {
	return n.config
}

func (n *Node) Register(name string, constructor ServiceConstructor) error {
	n.lock.Lock()
	defer n.lock.Unlock()

	if n.services != nil {
		return ErrNodeRunning
	}
	n.serviceFuncs = append(n.serviceFuncs, NamedServiceConstructor{name: name, constructor: constructor})
	return nil
}

// Start constructs every registered service in order, then starts them in the same order.
func (n *Node) Start() error {
	n.lock.Lock()
	defer n.lock.Unlock()

	if n.services != nil {
		return ErrNodeRunning
	}
	if err := n.openDataDir(); err != nil {
		return err
	}
	n.MainLoop = eventloop.NewEventLoop()
	n.EvBus = EventBus.New()

	serviceNames := make([]string, 0, len(n.serviceFuncs))
	services := make(map[string]Service)

	for _, namedConstructor := range n.serviceFuncs {
		ctx := &ServiceContext{
			config: n.config,
			// to support services to share, the list of services pass by reference
			services: services,
		}
		name := namedConstructor.name
		if _, exists := services[name]; exists {
			return &DuplicateServiceError{Kind: name}
		}
		service, err := namedConstructor.constructor(ctx)
		if err != nil {
			return errors.Wrapf(err, "construct service %s", name)
		}
		serviceNames = append(serviceNames, name)
		services[name] = service
	}

	var started []string
	for _, kind := range serviceNames {
		if err := services[kind].Start(n); err != nil {
			for i := len(started) - 1; i >= 0; i-- {
				_ = services[started[i]].Stop()
			}
			return errors.Wrapf(err, "start service %s", kind)
		}
		started = append(started, kind)
	}

	n.services, n.serviceNames = services, serviceNames
	return nil
}

func (n *Node) openDataDir() error {
	if n.config.DataDir == "" {
		return nil
	}
	confdir := n.config.InstanceDir()
	if _, err := os.Stat(confdir); os.IsNotExist(err) {
		return errors.Wrap(err, "not initialized, run `init` first")
	}
	return nil
}

// Stop stops services in reverse start order and releases Wait.
func (n *Node) Stop() error {
	n.lock.Lock()
	defer n.lock.Unlock()

	if n.services == nil {
		return ErrNodeStopped
	}
	failure := &StopError{
		Services: make(map[string]error),
	}
	length := len(n.serviceNames)
	for i := range n.serviceNames {
		kind := n.serviceNames[length-1-i]
		if err := n.services[kind].Stop(); err != nil {
			failure.Services[kind] = err
		}
	}
	n.services, n.serviceNames = nil, nil
	n.MainLoop.Stop()

	if len(failure.Services) > 0 {
		return failure
	}
	return nil
}

// Wait runs the main loop until the node is stopped.
func (n *Node) Wait() {
	n.lock.RLock()
	loop := n.MainLoop
	n.lock.RUnlock()
	if loop != nil {
		loop.Run()
	}
}

func (n *Node) Restart() error {
	if err := n.Stop(); err != nil {
		return err
	}
	return n.Start()
}

func (n *Node) Service(serviceName string) (interface{}, error) {
	n.lock.RLock()
	defer n.lock.RUnlock()

	if running, ok := n.services[serviceName]; ok {
		return running, nil
	}
	return nil, ErrServiceUnknown
}
