package v1_test

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"cv-manager-backend/docs"
	v1 "cv-manager-backend/internal/delivery/http/v1"
	"cv-manager-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swaggerDoc struct {
	Paths map[string]map[string]struct {
		Parameters []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"parameters"`
	} `json:"paths"`
}

var pathParam = regexp.MustCompile(`:(\w+)`)

func readSwagger(t *testing.T) swaggerDoc {
	t.Helper()
	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))
	return doc
}

func TestSwagger_DocumentsEveryRoute(t *testing.T) {
	api := newTestAPI(t)
	doc := readSwagger(t)

	for _, route := range api.router.Routes() {
		path := strings.TrimPrefix(route.Path, v1.BasePath)
		if strings.HasPrefix(path, "/swagger/") {
			continue
		}
		path = pathParam.ReplaceAllString(path, "{$1}")

		ops, ok := doc.Paths[path]
		if !assert.True(t, ok, "undocumented path %s", path) {
			continue
		}
		_, ok = ops[strings.ToLower(route.Method)]
		assert.True(t, ok, "undocumented operation %s %s", route.Method, path)
	}
}

func TestSwagger_ListLimitMatchesCap(t *testing.T) {
	doc := readSwagger(t)
	want := fmt.Sprintf("Page size (max %d)", domain.MaxListLimit)

	checked := 0
	for path, ops := range doc.Paths {
		for _, p := range ops["get"].Parameters {
			if p.Name == "limit" {
				assert.Equal(t, want, p.Description, path)
				checked++
			}
		}
	}
	assert.Greater(t, checked, 0)
}
