package parser

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"veres-tariff/internal/app/dto"
)

// SupportedFormats - расширения, из которых извлекается текст
var SupportedFormats = []string{".xlsx", ".csv", ".docx", ".pdf", ".txt"}

// ExtractText извлекает текст из файла по расширению.
// Поддерживаются .xlsx, .csv, .docx, .pdf и .txt.
// Изображения не обрабатываются: OCR делает внешний LLM-сервис
func ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".xlsx":
		return extractFromXLSX(data)
	case ".csv":
		return extractFromCSV(data)
	case ".docx":
		return extractFromDOCX(data)
	case ".pdf":
		return extractFromPDF(data)
	case ".txt":
		return string(data), nil
	default:
		return "", fmt.Errorf("неподдерживаемый формат файла: %s", ext)
	}
}

// InputFile - файл, пришедший в запросе на извлечение текста
type InputFile struct {
	Filename string
	Data     []byte
}

// ExtractBatch обрабатывает набор файлов. Ошибка одного файла
// не прерывает обработку остальных
func ExtractBatch(files []InputFile) []dto.ExtractedFile {
	results := make([]dto.ExtractedFile, 0, len(files))
	for _, f := range files {
		text, err := ExtractText(f.Filename, f.Data)
		if err != nil {
			logrus.Warnf("Ошибка извлечения текста из %s: %v", f.Filename, err)
			results = append(results, dto.ExtractedFile{
				Filename: f.Filename,
				Success:  false,
				Error:    err.Error(),
			})
			continue
		}
		results = append(results, dto.ExtractedFile{
			Filename: f.Filename,
			Success:  true,
			Text:     text,
		})
	}
	return results
}

func extractFromXLSX(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("cant open xlsx: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("cant read sheet %s: %w", sheet, err)
		}
		for _, row := range rows {
			line := strings.TrimRight(strings.Join(row, "\t"), "\t")
			if line == "" {
				continue
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func extractFromCSV(data []byte) (string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	// Тарифные выгрузки приходят и с запятой, и с точкой с запятой
	if bytes.Count(data, []byte{';'}) > bytes.Count(data, []byte{','}) {
		reader.Comma = ';'
	}

	var b strings.Builder
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("cant parse csv: %w", err)
		}
		b.WriteString(strings.Join(record, "\t"))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// docx - это zip с word/document.xml внутри. Текст лежит в элементах <w:t>,
// абзацы разделяются <w:p>
func extractFromDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("cant open docx: %w", err)
	}

	var doc io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("cant open document.xml: %w", err)
			}
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("document.xml not found in docx")
	}
	defer doc.Close()

	decoder := xml.NewDecoder(doc)
	var b strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("cant parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

func extractFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("cant open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			logrus.Warnf("Ошибка чтения страницы %d: %v", i, err)
			continue
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
