package model

import (
	"encoding/json"
	"fmt"
	"time"
)

type Code string

type URL string

func (U URL) String() string {
	return string(U)
}

// TimestampLayout задает формат createdAt: ISO-8601 в UTC с миллисекундами
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Link представляет запись короткой ссылки в хранилище
type Link struct {
	Code      Code      `json:"code"`
	URL       URL       `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	Hits      uint64    `json:"hits"`
}

// MarshalJSON пишет createdAt в формате TimestampLayout
func (l Link) MarshalJSON() ([]byte, error) {
	type linkJSON struct {
		Code      Code   `json:"code"`
		URL       URL    `json:"url"`
		CreatedAt string `json:"createdAt"`
		Hits      uint64 `json:"hits"`
	}

	return json.Marshal(linkJSON{
		Code:      l.Code,
		URL:       l.URL,
		CreatedAt: l.CreatedAtString(),
		Hits:      l.Hits,
	})
}

// CreatedAtString возвращает createdAt в формате TimestampLayout
func (l Link) CreatedAtString() string {
	return l.CreatedAt.UTC().Format(TimestampLayout)
}

// String форматирует запись для вывода списка
func (l Link) String() string {
	return fmt.Sprintf("%s\t%s\t[hits:%d] [created:%s]", l.Code, l.URL, l.Hits, l.CreatedAtString())
}

// Document описывает JSON документ хранилища
type Document struct {
	Links []Link `json:"links"`
}
