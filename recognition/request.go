package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

const defaultFileName = "sample.wav"

// Speakers возвращает список зарегистрированных дикторов
func (c *Client) Speakers(ctx context.Context) ([]string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+speakersPath, nil)
	if err != nil {
		return nil, err
	}

	b, err := c.request(request)
	if err != nil {
		return nil, errors.Wrap(err, "http request error")
	}

	var speakers []string
	if err := json.Unmarshal(b, &speakers); err != nil {
		return nil, errors.Wrap(err, "json unmarshal error")
	}

	if speakers == nil {
		speakers = []string{}
	}

	return speakers, nil
}

// Enroll регистрирует нового диктора по одному или нескольким образцам
func (c *Client) Enroll(ctx context.Context, name string, samples []Sample) (string, error) {
	f := newForm()
	f.field("name", name)
	for _, s := range samples {
		f.file("files", s)
	}

	body, contentType, err := f.close()
	if err != nil {
		return "", errors.Wrap(err, "build multipart error")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+speakersPath, body)
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", contentType)

	b, err := c.request(request)
	if err != nil {
		return "", errors.Wrap(err, "http request error")
	}

	var data messageResponse
	if err := json.Unmarshal(b, &data); err != nil {
		return "", errors.Wrap(err, "json unmarshal error")
	}

	return data.Message, nil
}

// Verify сравнивает образец со всеми зарегистрированными дикторами.
// Тело ответа разбирается при любом коде, решение принимается по полю status.
func (c *Client) Verify(ctx context.Context, probe Sample, threshold string) (*VerifyResult, error) {
	f := newForm()
	f.file("file", probe)
	f.field("threshold", threshold)

	body, contentType, err := f.close()
	if err != nil {
		return nil, errors.Wrap(err, "build multipart error")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+verifyPath, body)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", contentType)

	_, b, err := c.do(request)
	if err != nil {
		return nil, errors.Wrap(err, "http request error")
	}

	var result VerifyResult
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, errors.Wrap(err, "json unmarshal error")
	}

	return &result, nil
}

// Delete удаляет диктора, тело успешного ответа не используется
func (c *Client) Delete(ctx context.Context, name string) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+speakersPath+"/"+SpeakerPath(name), nil)
	if err != nil {
		return err
	}

	if _, err := c.request(request); err != nil {
		return errors.Wrap(err, "http request error")
	}

	return nil
}

// Reload заставляет сервис перечитать дикторов из своего каталога данных
func (c *Client) Reload(ctx context.Context) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+reloadPath, nil)
	if err != nil {
		return "", err
	}

	b, err := c.request(request)
	if err != nil {
		return "", errors.Wrap(err, "http request error")
	}

	var data messageResponse
	if err := json.Unmarshal(b, &data); err != nil {
		return "", errors.Wrap(err, "json unmarshal error")
	}

	return data.Message, nil
}

// SpeakerPath кодирует имя в один сегмент пути.
// Все символы вне unreserved набора RFC 3986 (включая "/", "?", "#", "%" и не-ASCII)
// заменяются percent-последовательностями, обратное декодирование дает исходное имя.
// Имена только из точек кодируются целиком, иначе "." и ".." схлопнутся как сегменты пути.
func SpeakerPath(name string) string {
	if name != "" && strings.Trim(name, ".") == "" {
		return strings.Repeat("%2E", len(name))
	}

	return url.PathEscape(name)
}

func (c *Client) request(request *http.Request) ([]byte, error) {
	statusCode, body, err := c.do(request)
	if err != nil {
		return nil, err
	}

	if statusCode < 200 || statusCode > 299 {
		return nil, newAPIError(statusCode, body)
	}

	return body, nil
}

func (c *Client) do(request *http.Request) (int, []byte, error) {
	request.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.Wrap(err, "read body error")
	}

	return resp.StatusCode, body, nil
}

type form struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

func newForm() *form {
	f := &form{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

func (f *form) field(name, value string) {
	if f.err != nil {
		return
	}

	f.err = f.w.WriteField(name, value)
}

func (f *form) file(name string, s Sample) {
	if f.err != nil {
		return
	}

	fileName := s.FileName
	if fileName == "" {
		fileName = defaultFileName
	}

	part, err := f.w.CreateFormFile(name, fileName)
	if err != nil {
		f.err = err
		return
	}

	_, f.err = part.Write(s.Data)
}

func (f *form) close() (io.Reader, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}

	if err := f.w.Close(); err != nil {
		return nil, "", err
	}

	return &f.buf, f.w.FormDataContentType(), nil
}
