package pinata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/x-xyz/hofa/base/ctx"
	"github.com/x-xyz/hofa/domain/hofa"
)

const (
	pinPath     = "/pinning/pinFileToIPFS"
	pinJsonPath = "/pinning/pinJSONToIPFS"
)

type pinataImpl struct {
	cfg Config
}

func New(apiKey, apiSecret string, opts ...Option) (hofa.Pinner, error) {
	cfg := Config{
		Endpoint:   DefaultEndpoint,
		ApiKey:     apiKey,
		ApiSecret:  apiSecret,
		HttpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	cfg.Endpoint = strings.TrimSuffix(cfg.Endpoint, "/")
	return &pinataImpl{cfg: cfg}, nil
}

func (im *pinataImpl) Pin(c ctx.Ctx, file io.Reader, extension string) (string, error) {
	var b bytes.Buffer

	w := multipart.NewWriter(&b)
	if fw, err := w.CreateFormFile("file", "file."+extension); err != nil {
		c.WithError(err).Error("w.CreateFormFile failed")
		return "", err
	} else if _, err := io.Copy(fw, file); err != nil {
		c.WithError(err).Error("io.Copy failed")
		return "", err
	}

	if im.cfg.Metadata != nil {
		if b, err := json.Marshal(im.cfg.Metadata); err != nil {
			c.WithError(err).Error("json.Marshal failed")
			return "", err
		} else if err := w.WriteField("pinataMetadata", string(b)); err != nil {
			return "", err
		}
	}

	if im.cfg.Options != nil {
		if b, err := json.Marshal(im.cfg.Options); err != nil {
			c.WithError(err).Error("json.Marshal failed")
			return "", err
		} else if err := w.WriteField("pinataOptions", string(b)); err != nil {
			return "", err
		}
	}

	if err := w.Close(); err != nil {
		return "", err
	}

	return im.post(c, pinPath, w.FormDataContentType(), &b)
}

func (im *pinataImpl) PinJson(c ctx.Ctx, value interface{}) (string, error) {
	body, err := json.Marshal(PinOptions{
		Metadata:      im.cfg.Metadata,
		Options:       im.cfg.Options,
		PinataContent: value,
	})
	if err != nil {
		c.WithError(err).Error("json.Marshal failed")
		return "", err
	}

	return im.post(c, pinJsonPath, "application/json", bytes.NewBuffer(body))
}

func (im *pinataImpl) post(c ctx.Ctx, path, contentType string, body io.Reader) (string, error) {
	url := fmt.Sprintf("%s%s", im.cfg.Endpoint, path)

	req, err := http.NewRequestWithContext(c, http.MethodPost, url, body)
	if err != nil {
		c.WithError(err).Error("http.NewRequest failed")
		return "", err
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("pinata_api_key", im.cfg.ApiKey)
	req.Header.Set("pinata_secret_api_key", im.cfg.ApiSecret)

	resp, err := im.cfg.HttpClient.Do(req)
	if err != nil {
		c.WithError(err).Error("HttpClient.Do failed")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		c.WithField("status", resp.StatusCode).WithField("errorBody", string(errorBody)).Error("Request failed")
		return "", ErrRequestFailed
	}

	type payload struct {
		IpfsHash string `json:"IpfsHash"`
	}

	p := &payload{}

	if err := json.NewDecoder(resp.Body).Decode(p); err != nil {
		c.WithError(err).Error("json.NewDecoder.Decode failed")
		return "", err
	}

	return p.IpfsHash, nil
}
