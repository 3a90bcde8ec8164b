package rpc

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/coschain/mide-token/iservices"
	"github.com/coschain/mide-token/vm"
	vmcontext "github.com/coschain/mide-token/vm/context"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultHTTPLimit default max http conns
	DefaultHTTPLimit = 128
	// MaxBodySize bounds a request body, embedded logos included
	MaxBodySize = 64 * 1024
)

// CallRequest carries a state-changing call. Msg is the contract message as plain JSON.
type CallRequest struct {
	Sender string          `json:"sender"`
	Msg    json.RawMessage `json:"msg"`
}

type InstantiateResult struct {
	Address  string              `json:"address"`
	Response *vmcontext.Response `json:"response"`
}

type errorBody struct {
	Err string `json:"error,omitempty"`
}

// Gateway serves the contract host over HTTP.
type Gateway struct {
	host   iservices.IHost
	log    *logrus.Logger
	engine *gin.Engine

	cors  []string
	limit int
}

func NewGateway(host iservices.IHost, log *logrus.Logger, allowedOrigins []string, limit int) *Gateway {
	if limit <= 0 {
		limit = DefaultHTTPLimit
	}
	g := &Gateway{host: host, log: log, cors: allowedOrigins, limit: limit}

	engine := gin.New()
	engine.Use(gin.Recovery(), g.logRequest)
	engine.GET("/block", g.block)
	engine.GET("/contracts", g.contracts)
	engine.POST("/contracts", g.instantiate)
	engine.GET("/contracts/:addr/version", g.version)
	engine.POST("/contracts/:addr/execute", g.execute)
	engine.POST("/contracts/:addr/query", g.query)
	engine.POST("/contracts/:addr/migrate", g.migrate)
	g.engine = engine
	return g
}

// Handler returns the gateway routes behind the CORS policy and the concurrency limit.
func (g *Gateway) Handler() http.Handler {
	var h http.Handler = g.engine
	if len(g.cors) > 0 {
		h = cors.New(cors.Options{
			AllowedHeaders: []string{"Content-Type", "Accept"},
			AllowedMethods: []string{"GET", "HEAD", "POST"},
			AllowedOrigins: g.cors,
			MaxAge:         600,
		}).Handler(h)
	}
	httpCh := make(chan bool, g.limit)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case httpCh <- true:
			defer func() { <-httpCh }()
			h.ServeHTTP(w, r)
		default:
			statusUnavailableHandler(w, r)
		}
	})
}

func statusUnavailableHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	w.Write([]byte(`{"error":"too many simultaneous requests, try again later"}`))
}

func (g *Gateway) logRequest(c *gin.Context) {
	start := time.Now()
	c.Next()
	entry := g.log.WithFields(logrus.Fields{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"elapsed": time.Since(start),
	})
	if len(c.Errors) > 0 {
		entry.WithError(c.Errors.Last()).Info("request failed")
	} else {
		entry.Debug("request served")
	}
}

// fail maps host and contract errors to a status and writes them verbatim.
func (g *Gateway) fail(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Cause(err) == vm.ErrContractNotFound || vmcontext.IsNotFound(err) {
		status = http.StatusNotFound
	}
	c.Error(err)
	c.JSON(status, errorBody{Err: err.Error()})
}

func readBody(c *gin.Context) ([]byte, error) {
	body, err := ioutil.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodySize))
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	return body, nil
}

func (g *Gateway) bindCall(c *gin.Context) (*CallRequest, bool) {
	body, err := readBody(c)
	if err != nil {
		g.fail(c, err)
		return nil, false
	}
	req := new(CallRequest)
	if err = json.Unmarshal(body, req); err != nil {
		g.fail(c, errors.Wrap(err, "decode request"))
		return nil, false
	}
	if len(req.Msg) == 0 {
		g.fail(c, errors.New("missing msg"))
		return nil, false
	}
	return req, true
}

func (g *Gateway) block(c *gin.Context) {
	c.JSON(http.StatusOK, g.host.Block())
}

func (g *Gateway) contracts(c *gin.Context) {
	list, err := g.host.Contracts()
	if err != nil {
		g.fail(c, err)
		return
	}
	if list == nil {
		list = []string{}
	}
	c.JSON(http.StatusOK, list)
}

func (g *Gateway) instantiate(c *gin.Context) {
	req, ok := g.bindCall(c)
	if !ok {
		return
	}
	addr, res, err := g.host.Instantiate(req.Sender, req.Msg)
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, &InstantiateResult{Address: addr, Response: res})
}

func (g *Gateway) execute(c *gin.Context) {
	req, ok := g.bindCall(c)
	if !ok {
		return
	}
	res, err := g.host.Execute(c.Param("addr"), req.Sender, req.Msg)
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// query takes the query message as the whole body and answers with the contract's bytes unchanged.
func (g *Gateway) query(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		g.fail(c, err)
		return
	}
	data, err := g.host.Query(c.Param("addr"), body)
	if err != nil {
		g.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

func (g *Gateway) migrate(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		g.fail(c, err)
		return
	}
	res, err := g.host.Migrate(c.Param("addr"), body)
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (g *Gateway) version(c *gin.Context) {
	ver, err := g.host.ContractVersion(c.Param("addr"))
	if err != nil {
		g.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ver)
}
