package transport

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// buildMultipart はアップロード用のmultipart/form-dataボディを構築する。
// フィールド構成はバックエンドのアップロードエンドポイントの契約に合わせ、
// image（ファイル本体）とfolder（保存先フォルダ名）の2つとする。
func buildMultipart(filename string, file io.Reader, folder string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("failed to read upload file: %w", err)
	}

	if err := w.WriteField("folder", folder); err != nil {
		return nil, "", fmt.Errorf("failed to write folder field: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
