package upi

import (
	"fmt"
	"net/url"

	"smarttech/config"

	qrcode "github.com/skip2/go-qrcode"
)

// BuildPayURI 拼接UPI收款链接
func BuildPayURI(conf *config.UpiConfig, txnID string, amountPaise int64, orderSn string) string {
	v := url.Values{}
	v.Set("pa", conf.PayeeID)
	v.Set("pn", conf.PayeeName)
	v.Set("mc", conf.MerchantCode)
	v.Set("tid", txnID)
	v.Set("am", fmt.Sprintf("%d.%02d", amountPaise/100, amountPaise%100))
	v.Set("cu", "INR")
	v.Set("tn", "Order ID: "+orderSn)
	return "upi://pay?" + v.Encode()
}

// QRCodePNG 生成收款二维码
func QRCodePNG(uri string, size int) ([]byte, error) {
	return qrcode.Encode(uri, qrcode.Medium, size)
}
