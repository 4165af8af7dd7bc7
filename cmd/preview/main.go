// Command preview runs one generation end to end from the terminal: it reads
// a request JSON file, generates the homepage, writes the artifacts to an
// output directory and, when a browser is available, captures screenshots at
// every responsive viewport.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	generatorpkg "sitegen-api/pkg/generator"
	llmpkg "sitegen-api/pkg/llm"
	renderpkg "sitegen-api/pkg/render"
)

var (
	requestFile  = flag.String("request", "", "path to a generation request JSON file")
	llmConfig    = flag.String("llm", "etc/llm.yaml", "llm config file")
	genConfig    = flag.String("generator", "etc/generator.yaml", "generator config file")
	renderConfig = flag.String("render", "etc/render.yaml", "render config file")
	outDir       = flag.String("out", "preview-out", "output directory")
	noRender     = flag.Bool("no-render", false, "skip screenshot capture")
)

func main() {
	flag.Parse()
	if *requestFile == "" {
		fmt.Fprintln(os.Stderr, "usage: preview -request request.json [-out dir]")
		os.Exit(2)
	}

	ctx := context.Background()
	req, err := readRequest(*requestFile)
	if err != nil {
		fatal("read request: %v", err)
	}

	llmCfg, err := llmpkg.LoadConfig(*llmConfig)
	if err != nil {
		fatal("load llm config: %v", err)
	}
	client, err := llmpkg.NewClient(llmCfg)
	if err != nil {
		fatal("init llm client: %v", err)
	}
	defer client.Close()

	genCfg, err := generatorpkg.LoadConfig(*genConfig)
	if err != nil {
		fatal("load generator config: %v", err)
	}
	pipeline, err := generatorpkg.NewPipeline(genCfg, client)
	if err != nil {
		fatal("init pipeline: %v", err)
	}

	result, err := pipeline.Generate(ctx, req)
	if err != nil {
		fatal("generate: %v", err)
	}
	logx.Infof("generated %s for %q in %dms", result.ID, result.BusinessName, result.GenerationTimeMs)

	if err := writeArtifacts(*outDir, result); err != nil {
		fatal("write artifacts: %v", err)
	}

	if !*noRender {
		captureScreenshots(ctx, *renderConfig, *outDir, result)
	}

	fmt.Printf("Preview written to %s\n", *outDir)
}

func readRequest(path string) (*generatorpkg.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var req generatorpkg.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	if req.Style == "" {
		req.Style = generatorpkg.StyleModern
	}
	return &req, nil
}

func writeArtifacts(dir string, result *generatorpkg.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files := map[string]string{
		"index.html": result.HTMLCode,
		"styles.css": result.CSSCode,
	}
	if result.JSCode != "" {
		files["booking.js"] = result.JSCode
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}
	meta, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "result.json"), meta, 0o644)
}

func captureScreenshots(ctx context.Context, cfgPath, dir string, result *generatorpkg.Result) {
	renderCfg, err := renderpkg.LoadConfig(cfgPath)
	if err != nil {
		logx.Errorf("load render config, skipping screenshots: %v", err)
		return
	}

	engine := renderpkg.NewEngine(renderCfg)
	engine.Initialize(ctx)
	defer engine.Cleanup()
	if !engine.Ready() {
		logx.Error("render engine unavailable, skipping screenshots")
		return
	}

	set, err := engine.CaptureResponsive(ctx, result.HTMLCode, result.CSSCode)
	if err != nil {
		logx.Errorf("responsive capture: %v", err)
		return
	}
	for name, url := range map[string]*string{
		"desktop": set.Desktop,
		"tablet":  set.Tablet,
		"mobile":  set.Mobile,
	} {
		if url == nil {
			logx.Errorf("no %s screenshot captured", name)
			continue
		}
		if err := writeDataURL(filepath.Join(dir, name+".png"), *url); err != nil {
			logx.Errorf("write %s screenshot: %v", name, err)
		}
	}
}

func writeDataURL(path, dataURL string) error {
	idx := strings.Index(dataURL, ",")
	if idx < 0 {
		return fmt.Errorf("malformed data URL")
	}
	img, err := base64.StdEncoding.DecodeString(dataURL[idx+1:])
	if err != nil {
		return err
	}
	return os.WriteFile(path, img, 0o644)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
