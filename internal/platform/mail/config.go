// Package mail provides outbound mail delivery for certification emails.
package mail

import "os"

// Config holds SES connection settings read from the environment.
type Config struct {
	AccessKey string
	SecretKey string
	Region    string
	From      string
}

// LoadConfig は環境変数からSES設定を読み込みます。
// リージョン未指定の場合はus-east-1を使用します。
func LoadConfig() Config {
	region := os.Getenv("SES_REGION")
	if region == "" {
		region = "us-east-1"
	}
	return Config{
		AccessKey: os.Getenv("SES_ACCESS_KEY"),
		SecretKey: os.Getenv("SES_SECRET_KEY"),
		Region:    region,
		From:      os.Getenv("MAIL_FROM"),
	}
}

// Enabled はSES経由の送信に必要な認証情報が揃っているかを返します。
func (c Config) Enabled() bool {
	return c.AccessKey != "" && c.SecretKey != "" && c.From != ""
}
