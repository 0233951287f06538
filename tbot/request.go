package tbot

import (
	"context"
	"fmt"
	"github.com/pkg/errors"
	"io"
	"net/http"
	"voice_access/recognition"
)

// лимит Bot API на скачивание файлов
const maxFileSize = 20 << 20

func (t *tBot) download(fileID, fileName string) (recognition.Sample, error) {
	fileURL, err := t.bot.GetFileDirectURL(fileID)
	if err != nil {
		return recognition.Sample{}, errors.Wrap(err, "get file url error")
	}

	data, err := downloadFile(t.ctx, t.httpClient, fileURL)
	if err != nil {
		return recognition.Sample{}, errors.Wrap(err, "download file error")
	}

	return recognition.Sample{FileName: fileName, Data: data}, nil
}

func downloadFile(ctx context.Context, client *http.Client, fileURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(fmt.Sprintf("response status isn't 200 OK returns: %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFileSize+1))
	if err != nil {
		return nil, err
	}

	if len(data) > maxFileSize {
		return nil, errors.New("file is too big")
	}

	return data, nil
}
