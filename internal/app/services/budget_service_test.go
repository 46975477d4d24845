package services

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RohitShalgar4/campus360/internal/pkg/apperrors"
)

func receiptHeader(contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "receipt",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestValidateReceipt(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		wantErr     bool
	}{
		{name: "jpeg under limit", contentType: "image/jpeg", size: MaxReceiptImageSize},
		{name: "png under limit", contentType: "image/png", size: 1024},
		{name: "jpg alias accepted", contentType: "image/jpg", size: 1024},
		{name: "jpeg over limit", contentType: "image/jpeg", size: MaxReceiptImageSize + 1, wantErr: true},
		{name: "pdf under limit", contentType: "application/pdf", size: MaxReceiptPDFSize},
		{name: "pdf over limit", contentType: "application/pdf", size: MaxReceiptPDFSize + 1, wantErr: true},
		{name: "pdf allowed beyond image limit", contentType: "application/pdf", size: MaxReceiptImageSize + 1},
		{name: "gif rejected", contentType: "image/gif", size: 1024, wantErr: true},
		{name: "missing content type", contentType: "", size: 1024, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReceipt(receiptHeader(tt.contentType, tt.size))
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidReceipt)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
