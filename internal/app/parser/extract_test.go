package parser

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func buildDOCX(t *testing.T, paragraphs []string) []byte {
	t.Helper()

	var doc bytes.Buffer
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		doc.WriteString(`<w:p><w:r><w:t>`)
		if err := xmlEscape(&doc, p); err != nil {
			t.Fatal(err)
		}
		doc.WriteString(`</w:t></w:r></w:p>`)
	}
	doc.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(doc.Bytes()); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func xmlEscape(buf *bytes.Buffer, s string) error {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	_, err := replacer.WriteString(buf, s)
	return err
}

func TestExtractTextTxt(t *testing.T) {
	got, err := ExtractText("rates.txt", []byte("Шанхай - Москва 5000 USD"))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if got != "Шанхай - Москва 5000 USD" {
		t.Errorf("text = %q", got)
	}
}

func TestExtractTextCSV(t *testing.T) {
	data := []byte("Откуда,Куда,Цена\nШанхай,Москва,5000\n")
	got, err := ExtractText("rates.csv", data)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	want := "Откуда\tКуда\tЦена\nШанхай\tМосква\t5000\n"
	if got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestExtractTextCSVSemicolon(t *testing.T) {
	data := []byte("Откуда;Куда;Цена\nНинбо;Казань;4500\n")
	got, err := ExtractText("rates.csv", data)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if !strings.Contains(got, "Нинбо\tКазань\t4500") {
		t.Errorf("разделитель ; не распознан: %q", got)
	}
}

func TestExtractTextDOCX(t *testing.T) {
	data := buildDOCX(t, []string{"Тарифы на перевозку", "Шанхай - Москва: 5000 USD"})
	got, err := ExtractText("rates.docx", data)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if !strings.Contains(got, "Тарифы на перевозку") || !strings.Contains(got, "Шанхай - Москва: 5000 USD") {
		t.Errorf("text = %q", got)
	}
}

func TestExtractTextUnsupported(t *testing.T) {
	_, err := ExtractText("scan.png", []byte{0x89, 0x50})
	if err == nil {
		t.Fatal("ожидалась ошибка для неподдерживаемого формата")
	}
}

func TestExtractBatchPartialFailure(t *testing.T) {
	files := []InputFile{
		{Filename: "a.txt", Data: []byte("первый")},
		{Filename: "b.png", Data: []byte("картинка")},
		{Filename: "c.txt", Data: []byte("третий")},
	}

	got := ExtractBatch(files)
	if len(got) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(got))
	}
	if !got[0].Success || got[0].Text != "первый" {
		t.Errorf("первый файл: %+v", got[0])
	}
	if got[1].Success || got[1].Error == "" {
		t.Errorf("второй файл должен завершиться ошибкой: %+v", got[1])
	}
	if !got[2].Success || got[2].Text != "третий" {
		t.Errorf("третий файл: %+v", got[2])
	}
}
