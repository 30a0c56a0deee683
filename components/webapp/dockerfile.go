package webapp

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates
var templatesFS embed.FS

var dockerfileTemplate = template.Must(
	template.New("Dockerfile.tmpl").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templatesFS, "templates/Dockerfile.tmpl"),
)

// RenderDockerfile produces the webapp Dockerfile for the given parameters.
func RenderDockerfile(params *Params) (string, error) {
	var buf bytes.Buffer
	if err := dockerfileTemplate.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("rendering Dockerfile: %w", err)
	}
	return buf.String(), nil
}

// WriteBuildContext writes the Dockerfile and entrypoint script into the
// application source checkout used as the docker build context. The context
// directory must already contain the application source and requirements.txt.
func WriteBuildContext(contextPath string, params *Params) error {
	info, err := os.Stat(contextPath)
	if err != nil {
		return fmt.Errorf("build context %s: %w", contextPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("build context %s is not a directory", contextPath)
	}

	dockerfile, err := RenderDockerfile(params)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(contextPath, "Dockerfile"), []byte(dockerfile), 0o644); err != nil {
		return err
	}

	entrypoint, err := templatesFS.ReadFile("templates/entrypoint.sh")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(contextPath, "entrypoint.sh"), entrypoint, 0o755)
}
