package lambda

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
)

// Adapter serves API Gateway proxy events through a gin engine, so the
// Lambda functions and the long-running server share one routing table
type Adapter struct {
	engine *gin.Engine
}

// NewAdapter creates an adapter around the given engine
func NewAdapter(engine *gin.Engine) *Adapter {
	return &Adapter{engine: engine}
}

// Handle converts the event to an HTTP request, runs it through the engine,
// and converts the captured response back
func (a *Adapter) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := FromAPIGateway(event)

	httpReq, err := a.toHTTPRequest(ctx, req)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"success":false,"error":"Internal server error"}`,
		}, nil
	}

	rec := newResponseRecorder()
	a.engine.ServeHTTP(rec, httpReq)

	resp := &Response{
		StatusCode: rec.status,
		Headers:    rec.flatHeaders(),
		Body:       rec.body.Bytes(),
	}
	return resp.ToAPIGateway(), nil
}

func (a *Adapter) toHTTPRequest(ctx context.Context, req *Request) (*http.Request, error) {
	u := &url.URL{Path: req.Path}
	if len(req.QueryParams) > 0 {
		query := url.Values{}
		for k, v := range req.QueryParams {
			query.Set(k, v)
		}
		u.RawQuery = query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), bytes.NewReader(req.Body))
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	return httpReq, nil
}

// responseRecorder captures the engine's response for conversion back to an
// API Gateway payload
type responseRecorder struct {
	status  int
	headers http.Header
	body    *bytes.Buffer
}

func newResponseRecorder() *responseRecorder {
	return &responseRecorder{
		status:  http.StatusOK,
		headers: make(http.Header),
		body:    &bytes.Buffer{},
	}
}

func (r *responseRecorder) Header() http.Header {
	return r.headers
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	return r.body.Write(b)
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
}

func (r *responseRecorder) flatHeaders() map[string]string {
	flat := make(map[string]string, len(r.headers))
	for k, values := range r.headers {
		if len(values) > 0 {
			flat[k] = values[0]
		}
	}
	return flat
}
