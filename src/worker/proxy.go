// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"slices"
	"sync"
	"unicode"
	"unicode/utf8"

	helper "github.com/H0llyW00dzZ/vercel-mcp/src/internal/helper/jsonrpc"
	"github.com/H0llyW00dzZ/vercel-mcp/src/logger"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/samber/lo"
)

// maxRequestBytes bounds a single JSON-RPC request body.
const maxRequestBytes = 1 << 20

var (
	contextType = reflect.TypeFor[context.Context]()
	stringType  = reflect.TypeFor[string]()
	resultType  = reflect.TypeFor[*mcp.CallToolResult]()
	errorType   = reflect.TypeFor[error]()
)

// dispatchable maps exported method names to their string parameter count.
// A method qualifies when it takes a context followed only by strings and
// returns (*mcp.CallToolResult, error).
var dispatchable = sync.OnceValue(func() map[string]int {
	t := reflect.TypeFor[*Worker]()
	methods := make(map[string]int, t.NumMethod())
	for i := range t.NumMethod() {
		m := t.Method(i)
		ft := m.Type
		// In(0) is the receiver.
		if ft.NumIn() < 2 || ft.In(1) != contextType || ft.NumOut() != 2 ||
			ft.Out(0) != resultType || ft.Out(1) != errorType {
			continue
		}
		ok := true
		for j := 2; j < ft.NumIn(); j++ {
			ok = ok && ft.In(j) == stringType
		}
		if ok {
			methods[m.Name] = ft.NumIn() - 2
		}
	}
	return methods
})

// Methods returns the JSON-RPC method names [Proxy] can dispatch, sorted.
func Methods() []string {
	names := lo.Map(lo.Keys(dispatchable()), func(name string, _ int) string {
		return lowerFirst(name)
	})
	slices.Sort(names)
	return names
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Proxy serves [JSON-RPC 2.0] over HTTP POST by calling [Worker] methods by name.
//
// A request such as
//
//	{"jsonrpc":"2.0","id":1,"method":"getDeployment","params":["dpl_1","{}"]}
//
// calls Worker.GetDeployment(ctx, "dpl_1", "{}"). The trailing options string
// may be omitted. The result is the tool envelope; failures become JSON-RPC errors.
// Envelope keys are matched case-insensitively and a missing "jsonrpc" member is tolerated.
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
type Proxy struct {
	worker *Worker
	log    logger.Logger
}

// NewProxy returns a proxy dispatching onto w. A nil logger discards failures.
func NewProxy(w *Worker, l logger.Logger) *Proxy {
	if l == nil {
		l = logger.NewMCPLogger(io.Discard, true)
	}
	return &Proxy{worker: w, log: l}
}

// ServeHTTP implements [http.Handler].
func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		p.reply(w, &jsonrpc.Response{Error: wireError(jsonrpc.CodeParseError, err)})
		return
	}

	normalized, err := helper.Marshal(data)
	if err != nil {
		p.reply(w, &jsonrpc.Response{Error: wireError(jsonrpc.CodeParseError, err)})
		return
	}

	msg, err := jsonrpc.DecodeMessage(normalized)
	if err != nil {
		p.reply(w, &jsonrpc.Response{Error: wireError(jsonrpc.CodeInvalidRequest, err)})
		return
	}

	req, ok := msg.(*jsonrpc.Request)
	if !ok {
		p.reply(w, &jsonrpc.Response{Error: wireError(jsonrpc.CodeInvalidRequest, errors.New("expected a request"))})
		return
	}

	result, err := p.call(r.Context(), req.Method, req.Params)
	if !req.IsCall() {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		p.log.Errorf("%s: %v", req.Method, err)
		p.reply(w, &jsonrpc.Response{ID: req.ID, Error: err})
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		p.reply(w, &jsonrpc.Response{ID: req.ID, Error: wireError(jsonrpc.CodeInternalError, err)})
		return
	}
	p.reply(w, &jsonrpc.Response{ID: req.ID, Result: raw})
}

// call resolves the method, checks the parameters and invokes it.
// Errors carry a JSON-RPC code.
func (p *Proxy) call(ctx context.Context, method string, params json.RawMessage) (*mcp.CallToolResult, error) {
	name := upperFirst(method)
	arity, ok := dispatchable()[name]
	if method == "" || !ok || lowerFirst(name) != method {
		return nil, &jsonrpc.Error{Code: jsonrpc.CodeMethodNotFound, Message: fmt.Sprintf("method %q not found", method)}
	}

	args, err := stringParams(params)
	if err != nil {
		return nil, &jsonrpc.Error{Code: jsonrpc.CodeInvalidParams, Message: err.Error()}
	}
	// The trailing options string is optional.
	if len(args) == arity-1 {
		args = append(args, "")
	}
	if len(args) != arity {
		return nil, &jsonrpc.Error{
			Code:    jsonrpc.CodeInvalidParams,
			Message: fmt.Sprintf("%s expects %d params, got %d", method, arity, len(args)),
		}
	}

	in := make([]reflect.Value, 0, arity+1)
	in = append(in, reflect.ValueOf(ctx))
	for _, arg := range args {
		in = append(in, reflect.ValueOf(arg))
	}

	out := reflect.ValueOf(p.worker).MethodByName(name).Call(in)
	if errVal := out[1].Interface(); errVal != nil {
		err := errVal.(error)
		code := int64(jsonrpc.CodeInternalError)
		if errors.Is(err, ErrMalformedInput) {
			code = jsonrpc.CodeInvalidParams
		}
		return nil, &jsonrpc.Error{Code: code, Message: err.Error()}
	}

	return out[0].Interface().(*mcp.CallToolResult), nil
}

// stringParams accepts a JSON array whose every element is a string.
// Absent params mean no arguments.
func stringParams(params json.RawMessage) ([]string, error) {
	if len(params) == 0 || string(params) == "null" {
		return nil, nil
	}

	var raw []any
	if err := json.Unmarshal(params, &raw); err != nil {
		return nil, errors.New("params must be an array of strings")
	}

	args := make([]string, 0, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("param %d must be a string, got %T", i, v)
		}
		args = append(args, s)
	}
	return args, nil
}

func wireError(code int64, err error) *jsonrpc.Error {
	return &jsonrpc.Error{Code: code, Message: err.Error()}
}

func (p *Proxy) reply(w http.ResponseWriter, resp *jsonrpc.Response) {
	data, err := jsonrpc.EncodeMessage(resp)
	if err != nil {
		p.log.Errorf("encoding response: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
