// Package image1bit provides a 1-bit monochrome image format matching the
// display RAM of page-addressed LCD controllers such as the ST7567.
//
// Pixels are packed 8 per byte along the vertical axis. The image is split in
// horizontal pages of 8 rows; each page holds one byte per column and bit 0 of
// that byte is the topmost row of the page.
//
// Memory layout example for a 4x16 image:
//
//	Page 0 (rows 0-7):  Pix[0] Pix[1] Pix[2] Pix[3]
//	Page 1 (rows 8-15): Pix[4] Pix[5] Pix[6] Pix[7]
//
//	Pixel (2, 9) lives in Pix[1*4+2] = Pix[6], bit 9%8 = 1 (mask 0x02).
//
// This package provides:
//
// - Bit: A color type representing a lit or unlit pixel
// - BitModel: A color model converting standard Go colors to Bit
// - VerticalLSB: An image.Image and draw.Image implementation of the page layout
//
// Example usage:
//
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
//	img.SetBit(10, 20, image1bit.On)
//	page := img.Region(0, 2, 128, 1) // the 128 bytes of rows 16-23
package image1bit
