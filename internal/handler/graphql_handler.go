package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"grover-graphql/internal/metrics"
	"grover-graphql/pkg/logger"
)

type GraphQLHandler struct {
	schema   *graphql.Schema
	readOnly *graphql.Schema
	timeout  time.Duration
	metrics  *metrics.Metrics
}

// NewGraphQLHandler serves POST with schema and GET with readOnly, which must
// not expose mutations.
func NewGraphQLHandler(schema, readOnly *graphql.Schema, timeout time.Duration, m *metrics.Metrics) *GraphQLHandler {
	return &GraphQLHandler{schema: schema, readOnly: readOnly, timeout: timeout, metrics: m}
}

type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Post executes a JSON encoded request body.
func (h *GraphQLHandler) Post(c *fiber.Ctx) error {
	var req graphQLRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	return h.execute(c, h.schema, req)
}

// Get executes a request passed as query parameters. Mutations are rejected.
// Query params: query, operationName, variables (JSON object)
func (h *GraphQLHandler) Get(c *fiber.Ctx) error {
	req := graphQLRequest{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}
	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid variables"})
		}
	}
	return h.execute(c, h.readOnly, req)
}

func (h *GraphQLHandler) execute(c *fiber.Ctx, schema *graphql.Schema, req graphQLRequest) error {
	if req.Query == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing query"})
	}

	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	resp := schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
	if len(resp.Errors) > 0 {
		h.metrics.GraphQLError(req.OperationName)
		logger.FromContext(ctx).Debug("graphql errors",
			zap.String("operation", req.OperationName),
			zap.Int("count", len(resp.Errors)),
			zap.String("first", resp.Errors[0].Message),
		)
	}

	return c.JSON(resp)
}
