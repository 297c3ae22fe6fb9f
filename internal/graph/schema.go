// Package graph holds the GraphQL schema and its resolvers.
package graph

import (
	_ "embed"
	"strings"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/pkg/errors"
)

//go:embed schema.graphql
var schemaSDL string

// NewSchema parses the schema against r. maxDepth bounds query nesting.
func NewSchema(r *Resolver, maxDepth int) (*graphql.Schema, error) {
	return parse(schemaSDL, r, maxDepth)
}

// NewReadOnlySchema serves the same queries with no mutation root, so any
// mutation sent to it fails validation.
func NewReadOnlySchema(r *Resolver, maxDepth int) (*graphql.Schema, error) {
	sdl := strings.Replace(schemaSDL, "  mutation: Mutation\n", "", 1)
	return parse(sdl, r, maxDepth)
}

func parse(sdl string, r *Resolver, maxDepth int) (*graphql.Schema, error) {
	var opts []graphql.SchemaOpt
	if maxDepth > 0 {
		opts = append(opts, graphql.MaxDepth(maxDepth))
	}

	schema, err := graphql.ParseSchema(sdl, r, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "parse graphql schema")
	}
	return schema, nil
}
