package service

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(tableName string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(tableName string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/?table=%s", g.BaseURL, url.QueryEscape(tableName))
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
