package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skip2/go-qrcode"

	"webinar-server/internal/config"
)

const qrCodeSize = 256

// webinarShareURL is the absolute link a webinar's QR code points at
func webinarShareURL(id int) string {
	return config.GetSiteConfig().AbsoluteURL(fmt.Sprintf("/webinars#webinar-%d", id))
}

// webinarQRCode returns a PNG QR code for the webinar's share URL
func webinarQRCode(ctx context.Context, id int) ([]byte, error) {
	content := webinarShareURL(id)
	key := "qr:" + content
	if png, ok := cacheGet(ctx, key); ok {
		return png, nil
	}

	result, err, _ := qrCodeGroup.Do(key, func() (interface{}, error) {
		png, err := qrcode.Encode(content, qrcode.Medium, qrCodeSize)
		if err != nil {
			slog.ErrorContext(ctx, "failed to generate QR code", "webinar_id", id, "error", err)
			return nil, fmt.Errorf("failed to generate QR code: %w", err)
		}
		cacheSet(ctx, key, png, cacheConfig.QRCodeTTL)
		return png, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}
