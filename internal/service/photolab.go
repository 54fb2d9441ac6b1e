package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/fitfood-app/backend/config"
	"github.com/fitfood-app/backend/internal/logger"
)

const (
	visionModel = "gemini-2.5-flash"
	imagenModel = "imagen-3.0-generate-002"

	// imagenStyleSuffix is appended to every generation prompt.
	imagenStyleSuffix = ", dramatic lighting, hyperrealistic, 8k, sharp focus, cinematic"
)

// PhotoLabService reimagines a food photo in two stages: a vision model
// describes the dish, then an image model renders a studio-quality version
// from that description.
type PhotoLabService struct {
	baseURL string
	client  *http.Client
	s3      *config.S3Config
	log     *zap.Logger
}

// NewPhotoLabService creates a photo lab against the given Gemini base URL.
// s3cfg may be nil; mirroring is skipped when it is.
func NewPhotoLabService(baseURL string, s3cfg *config.S3Config) *PhotoLabService {
	return &PhotoLabService{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 120 * time.Second},
		s3:      s3cfg,
		log:     logger.L(),
	}
}

// EnhancePhoto takes a base64-encoded JPEG and returns a base64-encoded
// reimagined image. The caller is responsible for quota accounting.
func (s *PhotoLabService) EnhancePhoto(ctx context.Context, imageBase64, apiKey, promptTemplate string) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("%w: photo lab API key is not set", ErrConfigurationMissing)
	}

	description, err := s.describePhoto(ctx, imageBase64, apiKey, promptTemplate)
	if err != nil {
		s.log.Error("[PhotoLab] description stage failed", zap.Error(err))
		return "", err
	}

	result, err := s.renderPhoto(ctx, description, apiKey)
	if err != nil {
		s.log.Error("[PhotoLab] render stage failed", zap.Error(err))
		return "", err
	}

	if s.s3 != nil {
		go s.mirrorToS3(result)
	}

	return result, nil
}

// describePhoto asks the vision model for a text description of the dish.
func (s *PhotoLabService) describePhoto(ctx context.Context, imageBase64, apiKey, promptTemplate string) (string, error) {
	text, err := generateContent(ctx, s.client, s.baseURL, visionModel, apiKey, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{
			{InlineData: &geminiInlineData{MimeType: "image/jpeg", Data: imageBase64}},
			{Text: promptTemplate},
		}}},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

type imagenRequest struct {
	Instances  []imagenInstance `json:"instances"`
	Parameters imagenParameters `json:"parameters"`
}

type imagenInstance struct {
	Prompt string `json:"prompt"`
}

type imagenParameters struct {
	SampleCount int    `json:"sampleCount"`
	AspectRatio string `json:"aspectRatio"`
}

type imagenResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
	} `json:"predictions"`
}

// renderPhoto calls the image model's predict endpoint with the
// description plus the house style suffix.
func (s *PhotoLabService) renderPhoto(ctx context.Context, description, apiKey string) (string, error) {
	body, err := json.Marshal(imagenRequest{
		Instances: []imagenInstance{{Prompt: description + imagenStyleSuffix}},
		Parameters: imagenParameters{
			SampleCount: 1,
			AspectRatio: "1:1",
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:predict?key=%s", s.baseURL, imagenModel, apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteCallFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrRemoteCallFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: predict returned status %d: %s", ErrRemoteCallFailed, resp.StatusCode, string(data))
	}

	var parsed imagenResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrRemoteCallFailed, err)
	}
	if len(parsed.Predictions) == 0 || parsed.Predictions[0].BytesBase64Encoded == "" {
		return "", fmt.Errorf("%w: no image in response", ErrRemoteCallFailed)
	}

	return parsed.Predictions[0].BytesBase64Encoded, nil
}

// mirrorToS3 uploads a copy of the generated image. Failures are logged
// and never surface to the caller.
func (s *PhotoLabService) mirrorToS3(imageBase64 string) {
	raw, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		s.log.Warn("[PhotoLab] mirror skipped, invalid base64", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key := fmt.Sprintf("enhanced/%d.png", time.Now().UnixMilli())
	_, err = s.s3.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(raw),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		s.log.Warn("[PhotoLab] mirror upload failed", zap.Error(err))
		return
	}
	s.log.Info("[PhotoLab] mirrored enhanced image", zap.String("key", key))
}
