package servers

//go:generate oapi-codegen -generate types,server,spec -package servers -o servers.gen.go ../../../api/openapi.yml
