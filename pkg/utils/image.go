package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Регистрируем PNG декодер

	"github.com/nfnt/resize"
)

// ResizeImage ресайзит фото вещи до указанной ширины, сохраняя пропорции.
//
// Vision модели не нужен оригинал в полном разрешении — уменьшение
// экономит токены и время загрузки.
//
// Параметры:
//   - data: байты исходного изображения (JPEG, PNG)
//   - maxWidth: целевая ширина в пикселях; 0 или больше исходной — без ресайза
//   - quality: качество JPEG при кодировании (1-100)
//
// Результат всегда перекодируется в JPEG (для base64 data-uri).
func ResizeImage(data []byte, maxWidth int, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if maxWidth > 0 && bounds.Dx() > maxWidth {
		// Высота из aspect ratio, Lanczos3 как качественный фильтр
		ratio := float64(bounds.Dy()) / float64(bounds.Dx())
		img = resize.Resize(uint(maxWidth), uint(float64(maxWidth)*ratio), img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode to jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
