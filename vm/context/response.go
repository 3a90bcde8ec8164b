package vmcontext

import (
	"github.com/coschain/mide-token/prototype"
)

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Event struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
}

type WasmExecuteMsg struct {
	ContractAddr string           `json:"contract_addr"`
	Msg          []byte           `json:"msg"`
	Funds        []prototype.Coin `json:"funds"`
}

type WasmMsg struct {
	Execute *WasmExecuteMsg `json:"execute,omitempty"`
}

// CosmosMsg is a message a contract asks the host to dispatch after the call succeeds.
type CosmosMsg struct {
	Wasm *WasmMsg `json:"wasm,omitempty"`
}

type Response struct {
	Messages   []CosmosMsg `json:"messages"`
	Attributes []Attribute `json:"attributes"`
	Events     []Event     `json:"events"`
	Data       []byte      `json:"data,omitempty"`
}

func NewResponse() *Response {
	return &Response{
		Messages:   []CosmosMsg{},
		Attributes: []Attribute{},
		Events:     []Event{},
	}
}

func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

func (r *Response) AddMessage(msg CosmosMsg) *Response {
	r.Messages = append(r.Messages, msg)
	return r
}

func (r *Response) AddEvent(ev Event) *Response {
	r.Events = append(r.Events, ev)
	return r
}

// Attribute returns the first value stored under key.
func (r *Response) Attribute(key string) (string, bool) {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
