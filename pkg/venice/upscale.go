package venice

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UpscaleOptions tunes an upscale pass.
type UpscaleOptions struct {
	Scale       int     `json:"scale"`
	Enhance     bool    `json:"enhance"`
	Creativity  float64 `json:"enhance_creativity"`
	Replication float64 `json:"replication"`

	// Prompt optionally steers the enhancement.
	Prompt string `json:"enhance_prompt,omitempty"`
}

// DefaultUpscaleOptions returns the standard upscale settings.
func DefaultUpscaleOptions() UpscaleOptions {
	return UpscaleOptions{
		Scale:       4,
		Enhance:     true,
		Creativity:  0.15,
		Replication: 0.35,
	}
}

// UpscaleResult reports where an upscaled artifact landed on disk.
type UpscaleResult struct {
	Success       bool   `json:"success"`
	InputPath     string `json:"input_path"`
	OutputPath    string `json:"output_path"`
	MetadataPath  string `json:"metadata_path"`
	SHA256        string `json:"image_sha256"`
	CorrelationID string `json:"correlation_id"`
}

// Upscale sends image bytes through the upscale endpoint and returns the
// upscaled bytes plus any response metadata.
func (c *Client) Upscale(ctx context.Context, image []byte, opts UpscaleOptions) ([]byte, map[string]any, error) {
	if opts == (UpscaleOptions{}) {
		opts = DefaultUpscaleOptions()
	}

	body := map[string]any{
		"image":             base64.StdEncoding.EncodeToString(image),
		"scale":             opts.Scale,
		"enhance":           opts.Enhance,
		"enhanceCreativity": opts.Creativity,
		"replication":       opts.Replication,
	}
	if opts.Prompt != "" {
		body["enhancePrompt"] = opts.Prompt
	}

	resp, err := c.authorized().
		SetContext(ctx).
		SetBody(body).
		Post(c.baseURL + upscalePath)
	if err != nil {
		return nil, nil, fmt.Errorf("upscale request failed: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, nil, apiError(resp)
	}

	return decodeImage(resp)
}

// UpscaleFile upscales an image from disk and writes the result next to a
// metadata sidecar. When outputPath is empty the artifact lands in an
// upscaled/ directory beside the input.
func (c *Client) UpscaleFile(ctx context.Context, inputPath, outputPath string, opts UpscaleOptions) (*UpscaleResult, error) {
	image, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inputPath, err)
	}

	upscaled, responseMeta, err := c.Upscale(ctx, image, opts)
	if err != nil {
		return nil, err
	}

	if outputPath == "" {
		dir := filepath.Join(filepath.Dir(inputPath), upscaledSubdir)
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		outputPath = filepath.Join(dir, base+"_upscaled"+filepath.Ext(inputPath))
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	if err := writeAtomic(outputPath, upscaled); err != nil {
		return nil, err
	}

	correlationID := uuid.NewString()
	sum := digest(upscaled)

	metadataDir := filepath.Join(filepath.Dir(outputPath), metadataSubdir)
	if err := os.MkdirAll(metadataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating metadata directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(outputPath), filepath.Ext(outputPath))
	metadataPath := filepath.Join(metadataDir, base+".json")

	if err := writeMetadata(metadataPath, metadata{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Mode:          "upscale",
		CorrelationID: correlationID,
		RequestParams: opts,
		ResponseMeta:  responseMeta,
		OutputPath:    outputPath,
		OutputSHA256:  sum,
	}); err != nil {
		return nil, err
	}

	return &UpscaleResult{
		Success:       true,
		InputPath:     inputPath,
		OutputPath:    outputPath,
		MetadataPath:  metadataPath,
		SHA256:        sum,
		CorrelationID: correlationID,
	}, nil
}
