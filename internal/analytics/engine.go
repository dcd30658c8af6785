package analytics

import "context"

// Engine executes built queries against a QueryService.
type Engine struct {
	svc QueryService
}

func NewEngine(svc QueryService) *Engine {
	return &Engine{svc: svc}
}

// Execute runs req for the given site. Rows come back in the order the
// service returned them; an empty result is a valid outcome, not an error.
// Service failures are wrapped as *QueryServiceError and never retried.
func (e *Engine) Execute(ctx context.Context, siteURL string, req *QueryRequest) ([]MetricRow, error) {
	rows, err := e.svc.Query(ctx, siteURL, req)
	if err != nil {
		return nil, &QueryServiceError{Site: siteURL, Err: err}
	}
	return rows, nil
}
