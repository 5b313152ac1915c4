package http

import (
	"fmt"
	"sync"

	"speedfast/internal/generated/servers"

	"github.com/swaggo/swag"
)

// loadDoc renders the embedded OpenAPI document once. Servers is dropped so
// the UI targets whichever host served it.
var loadDoc = sync.OnceValues(func() ([]byte, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	swagger.Servers = nil
	return swagger.MarshalJSON()
})

var registerDoc sync.Once

// openAPIDoc feeds the embedded document to echo-swagger's doc.json.
type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string {
	doc, err := loadDoc()
	if err != nil {
		return "{}"
	}
	return string(doc)
}

func registerDocs() error {
	if _, err := loadDoc(); err != nil {
		return err
	}
	registerDoc.Do(func() {
		swag.Register(swag.Name, openAPIDoc{})
	})
	return nil
}
