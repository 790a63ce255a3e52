// Command converter turns the swag generated Swagger 2.0 document into a
// validated OpenAPI 3 YAML file.
//
//	go run ./docs/converter -i docs/swagger.json -o docs/openapi.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cloudwego/hertz/pkg/common/json"
	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v2"
)

func main() {
	in := flag.String("i", "", "Swagger 2.0 JSON input")
	out := flag.String("o", "", "OpenAPI 3 YAML output")
	server := flag.String("server", "", "server URL to add to the document")
	help := flag.Bool("help", false, "show help")
	flag.Parse()

	if *in == "" || *out == "" || *help {
		flag.Usage()
		return
	}

	if err := convert(context.Background(), *in, *out, *server); err != nil {
		fmt.Fprintln(os.Stderr, "converter:", err)
		os.Exit(1)
	}
}

func convert(ctx context.Context, in, out, server string) error {
	input, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	var v2 openapi2.T
	if err := json.Unmarshal(input, &v2); err != nil {
		return fmt.Errorf("parse %s: %w", in, err)
	}

	v3, err := openapi2conv.ToV3(&v2)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	if server != "" {
		v3.Servers = openapi3.Servers{{URL: server}}
	}
	if err := v3.Validate(ctx); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	doc, err := v3.MarshalYAML()
	if err != nil {
		return err
	}
	body, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(out, body, 0o644)
}
