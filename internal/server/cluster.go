package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/drakos74/edu-cluster/internal/chart"
	"github.com/drakos74/edu-cluster/internal/cluster"
	"github.com/drakos74/edu-cluster/internal/model"
)

const (
	kParam   = "k"
	htmlType = "text/html; charset=utf-8"
)

// ClusterRoutes exposes the pipeline over http.
func ClusterRoutes(pipeline *cluster.Pipeline) []Route {
	return []Route{
		{
			Action: Api,
			Path:   "dataset",
			Method: GET,
			Exec: func(r *http.Request) ([]byte, int, error) {
				return JsonResponse(pipeline.Dataset())
			},
		},
		{
			Action: Api,
			Path:   "cluster",
			Method: GET,
			Exec: withResult(pipeline, func(result *cluster.Result) ([]byte, int, error) {
				return JsonResponse(result)
			}),
		},
		{
			Action: Api,
			Path:   "summary",
			Method: GET,
			Exec: withResult(pipeline, func(result *cluster.Result) ([]byte, int, error) {
				return JsonResponse(result.Summary)
			}),
		},
		{
			Action:      Chart,
			Path:        "scatter",
			Method:      GET,
			ContentType: htmlType,
			Exec: withResult(pipeline, func(result *cluster.Result) ([]byte, int, error) {
				return render(chart.Scatter(result, chart.DefaultAxes))
			}),
		},
		{
			Action:      Chart,
			Path:        "sizes",
			Method:      GET,
			ContentType: htmlType,
			Exec: withResult(pipeline, func(result *cluster.Result) ([]byte, int, error) {
				return render(chart.Sizes(result))
			}),
		},
	}
}

// withResult runs the pipeline for the requested k and hands the result to the given handler.
func withResult(pipeline *cluster.Pipeline, exec func(result *cluster.Result) ([]byte, int, error)) Handler {
	return func(r *http.Request) ([]byte, int, error) {
		k, err := parseK(r, pipeline)
		if err != nil {
			return []byte(err.Error()), http.StatusBadRequest, nil
		}
		result, err := pipeline.Run(k)
		if errors.Is(err, model.InvalidParameterErr) {
			return []byte(err.Error()), http.StatusBadRequest, nil
		} else if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		return exec(result)
	}
}

// parseK reads the cluster count from the query, falling back to the configured default.
func parseK(r *http.Request, pipeline *cluster.Pipeline) (int, error) {
	cfg := pipeline.Config()
	values, ok := r.URL.Query()[kParam]
	if !ok || len(values) == 0 || values[0] == "" {
		return cfg.K, nil
	}
	k, err := strconv.Atoi(values[0])
	if err != nil {
		return 0, fmt.Errorf("could not parse k '%s': %w", values[0], model.InvalidParameterErr)
	}
	if err := cfg.Check(k); err != nil {
		return 0, err
	}
	return k, nil
}

func render(c chart.Renderer) ([]byte, int, error) {
	var buf bytes.Buffer
	if err := chart.Render(&buf, c); err != nil {
		return nil, http.StatusInternalServerError, err
	}
	return buf.Bytes(), http.StatusOK, nil
}
