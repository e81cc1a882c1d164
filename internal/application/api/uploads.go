package api

import (
	"context"
	"encoding/json"
	"io"

	"github.com/mydailybill/mdb-admin/internal/infrastructure/gateway"
)

// UploadsAPI wraps the file upload endpoint.
type UploadsAPI struct {
	gw *gateway.Client
}

// UploadFile posts a file as multipart/form-data under the "file" field,
// tagged with an upload type ("general" when empty).
func (u *UploadsAPI) UploadFile(ctx context.Context, filename string, file io.Reader, fileType string) (json.RawMessage, error) {
	if fileType == "" {
		fileType = "general"
	}
	resp, err := u.gw.PostMultipart(ctx, "/upload", "file", filename, file, map[string]string{"type": fileType})
	if err := normalize(resp, err, "Failed to upload file"); err != nil {
		return nil, err
	}
	return json.RawMessage(resp.Body), nil
}
