package venice

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/venxlabs/venx/pkg/utils"
)

const (
	// DefaultModel is the image model used when none is requested.
	DefaultModel = "flux-dev-uncensored"

	// DefaultAspectRatio applies when neither dimensions nor a ratio are set.
	DefaultAspectRatio = "tall"

	// DefaultSteps and DefaultCfgScale are the generation tuning defaults.
	DefaultSteps    = 30
	DefaultCfgScale = 5.0

	// DefaultFormat is the output image format.
	DefaultFormat = "png"
)

// GenerateOptions tunes one image generation. Start from
// DefaultGenerateOptions and override fields as needed.
type GenerateOptions struct {
	Model          string
	AspectRatio    string
	Width          int
	Height         int
	Steps          int
	CfgScale       float64
	NegativePrompt string
	Seed           *int64
	Format         string
	StylePreset    string
	HideWatermark  bool
	EmbedEXIF      bool
	SafeMode       bool

	// AutoUpscale runs an upscale pass after a successful generation.
	// Upscale failures are recorded on the result, never fatal.
	AutoUpscale bool
	Upscale     UpscaleOptions

	OutputDir  string
	OutputName string
}

// DefaultGenerateOptions returns the standard generation settings.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Model:         DefaultModel,
		AspectRatio:   DefaultAspectRatio,
		Steps:         DefaultSteps,
		CfgScale:      DefaultCfgScale,
		Format:        DefaultFormat,
		HideWatermark: true,
		Upscale:       DefaultUpscaleOptions(),
		OutputDir:     DefaultOutputDir,
	}
}

// GenerateResult reports where a generation landed on disk.
type GenerateResult struct {
	Success       bool   `json:"success"`
	ImagePath     string `json:"generated_image_path"`
	MetadataPath  string `json:"metadata_path"`
	SHA256        string `json:"image_sha256"`
	CorrelationID string `json:"correlation_id"`
	RequestID     string `json:"request_id,omitempty"`

	UpscaledImagePath    string `json:"upscaled_image_path,omitempty"`
	UpscaledMetadataPath string `json:"upscaled_metadata_path,omitempty"`
	UpscaledSHA256       string `json:"upscaled_image_sha256,omitempty"`
	UpscaleError         string `json:"upscale_error,omitempty"`
}

// generateParams is the request snapshot persisted into metadata. Width and
// height record the resolved pixel dimensions, not the raw request fields.
type generateParams struct {
	Prompt         string  `json:"prompt"`
	Model          string  `json:"model"`
	AspectRatio    string  `json:"aspect_ratio"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Steps          int     `json:"steps"`
	CfgScale       float64 `json:"cfg_scale"`
	NegativePrompt string  `json:"negative_prompt"`
	Seed           *int64  `json:"seed"`
	Format         string  `json:"format"`
	StylePreset    string  `json:"style_preset,omitempty"`
	HideWatermark  bool    `json:"hide_watermark"`
	EmbedEXIF      bool    `json:"embed_exif_metadata"`
	SafeMode       bool    `json:"safe_mode"`
}

// metadata is the sidecar document written next to every artifact.
type metadata struct {
	Timestamp     string         `json:"timestamp"`
	Mode          string         `json:"mode"`
	CorrelationID string         `json:"correlation_id"`
	RequestID     string         `json:"request_id,omitempty"`
	RequestParams any            `json:"request_params"`
	ResponseMeta  map[string]any `json:"response_meta,omitempty"`
	OutputPath    string         `json:"output_path"`
	OutputSHA256  string         `json:"output_sha256"`
}

// Generate requests an image, persists the artifact and its metadata sidecar,
// and optionally upscales the result. The returned result always names the
// written paths; the error is non-nil only when no artifact was produced.
func (c *Client) Generate(ctx context.Context, prompt string, opts GenerateOptions) (*GenerateResult, error) {
	applyGenerateDefaults(&opts)

	width, height, err := EffectiveDims(opts.AspectRatio, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	dirs, err := ensureDirs(opts.OutputDir)
	if err != nil {
		return nil, err
	}

	correlationID := uuid.NewString()

	body := map[string]any{
		"model":               opts.Model,
		"prompt":              prompt,
		"width":               width,
		"height":              height,
		"steps":               opts.Steps,
		"cfg_scale":           opts.CfgScale,
		"negative_prompt":     opts.NegativePrompt,
		"format":              opts.Format,
		"hide_watermark":      opts.HideWatermark,
		"embed_exif_metadata": opts.EmbedEXIF,
		"safe_mode":           opts.SafeMode,
	}
	if opts.Seed != nil {
		body["seed"] = *opts.Seed
	}
	if opts.StylePreset != "" {
		body["style_preset"] = opts.StylePreset
	}

	c.logger.Debug("generating image",
		"model", opts.Model,
		"prompt", utils.Truncate(prompt, 80),
		"width", width,
		"height", height,
		"correlation_id", correlationID,
	)

	resp, err := c.authorized().
		SetContext(ctx).
		SetBody(body).
		Post(c.baseURL + generatePath)
	if err != nil {
		return nil, fmt.Errorf("image generation request failed: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, apiError(resp)
	}

	image, responseMeta, err := decodeImage(resp)
	if err != nil {
		return nil, err
	}

	stem := c.stem(opts.OutputName, opts.Seed)
	imagePath := filepath.Join(dirs.root, stem+"."+opts.Format)
	metadataPath := filepath.Join(dirs.metadata, stem+".json")

	if err := writeAtomic(imagePath, image); err != nil {
		return nil, err
	}

	sum := digest(image)
	reqID := requestID(resp)

	params := generateParams{
		Prompt:         prompt,
		Model:          opts.Model,
		AspectRatio:    opts.AspectRatio,
		Width:          width,
		Height:         height,
		Steps:          opts.Steps,
		CfgScale:       opts.CfgScale,
		NegativePrompt: opts.NegativePrompt,
		Seed:           opts.Seed,
		Format:         opts.Format,
		StylePreset:    opts.StylePreset,
		HideWatermark:  opts.HideWatermark,
		EmbedEXIF:      opts.EmbedEXIF,
		SafeMode:       opts.SafeMode,
	}

	if err := writeMetadata(metadataPath, metadata{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Mode:          "generate",
		CorrelationID: correlationID,
		RequestID:     reqID,
		RequestParams: params,
		ResponseMeta:  responseMeta,
		OutputPath:    imagePath,
		OutputSHA256:  sum,
	}); err != nil {
		return nil, err
	}

	result := &GenerateResult{
		Success:       true,
		ImagePath:     imagePath,
		MetadataPath:  metadataPath,
		SHA256:        sum,
		CorrelationID: correlationID,
		RequestID:     reqID,
	}

	if opts.AutoUpscale {
		c.autoUpscale(ctx, result, image, stem, dirs, correlationID, opts)
	}

	return result, nil
}

// autoUpscale runs the follow-up upscale pass. Failures land on the result as
// upscale_error so the caller still gets the generated artifact.
func (c *Client) autoUpscale(ctx context.Context, result *GenerateResult, image []byte,
	stem string, dirs artifactDirs, correlationID string, opts GenerateOptions) {

	upscaled, responseMeta, err := c.Upscale(ctx, image, opts.Upscale)
	if err != nil {
		c.logger.Warn("auto-upscale failed", "correlation_id", correlationID, "error", err)
		result.UpscaleError = err.Error()
		return
	}

	imagePath := filepath.Join(dirs.upscaled, stem+"_upscaled."+opts.Format)
	metadataPath := filepath.Join(dirs.metadata, stem+"_upscaled.json")

	if err := writeAtomic(imagePath, upscaled); err != nil {
		result.UpscaleError = err.Error()
		return
	}

	sum := digest(upscaled)
	if err := writeMetadata(metadataPath, metadata{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Mode:          "upscale",
		CorrelationID: correlationID,
		RequestParams: opts.Upscale,
		ResponseMeta:  responseMeta,
		OutputPath:    imagePath,
		OutputSHA256:  sum,
	}); err != nil {
		result.UpscaleError = err.Error()
		return
	}

	result.UpscaledImagePath = imagePath
	result.UpscaledMetadataPath = metadataPath
	result.UpscaledSHA256 = sum
}

// applyGenerateDefaults fills unset tuning fields. Boolean defaults come from
// DefaultGenerateOptions; zero values here only cover callers that built the
// struct by hand.
func applyGenerateDefaults(opts *GenerateOptions) {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Steps == 0 {
		opts.Steps = DefaultSteps
	}
	if opts.CfgScale == 0 {
		opts.CfgScale = DefaultCfgScale
	}
	if opts.Format == "" {
		opts.Format = DefaultFormat
	}
	if opts.AutoUpscale && opts.Upscale == (UpscaleOptions{}) {
		opts.Upscale = DefaultUpscaleOptions()
	}
}

// decodeImage extracts the image bytes from a generation response. The
// content type decides the shape exactly once: image/* bodies are the raw
// bytes, anything else is a JSON envelope carrying base64 data.
func decodeImage(resp *resty.Response) ([]byte, map[string]any, error) {
	contentType := resp.Header().Get("Content-Type")
	if strings.HasPrefix(contentType, "image/") {
		return resp.Body(), map[string]any{"content_type": contentType, "binary": true}, nil
	}

	var envelope map[string]any
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, nil, fmt.Errorf("decoding generation response: %w", err)
	}

	encoded, ok := encodedImage(envelope)
	if !ok {
		return nil, nil, fmt.Errorf("%w (keys: %v)", ErrNoImageData, mapKeys(envelope))
	}

	image, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding base64 image data: %w", err)
	}

	meta := make(map[string]any, len(envelope))
	for key, value := range envelope {
		if key == "images" || key == "image" {
			continue
		}
		meta[key] = value
	}

	return image, meta, nil
}

// encodedImage finds the base64 payload under either envelope shape the API
// has used: an images array or a single image field.
func encodedImage(envelope map[string]any) (string, bool) {
	if images, ok := envelope["images"].([]any); ok && len(images) > 0 {
		if s, ok := images[0].(string); ok && s != "" {
			return s, true
		}
	}
	if s, ok := envelope["image"].(string); ok && s != "" {
		return s, true
	}
	return "", false
}

// writeMetadata persists the sidecar document atomically.
func writeMetadata(path string, doc metadata) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}
	return writeAtomic(path, data)
}

func mapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	return keys
}
