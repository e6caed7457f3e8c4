// preprocess.go - Turns uploaded image bytes into the classifier's input tensor

package imaging // Declares the package name

import ( // Import required packages
	"bytes"        // Reader over uploaded bytes
	"image"        // Decoding and pixel access
	"image/color"  // Colour model conversion
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	"caloriq-backend/apperr" // Error taxonomy

	"github.com/nfnt/resize"    // Image resizing
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

const ( // Input geometry used at training time
	Size     = 256 // Square side in pixels
	Channels = 3   // RGB
)

// Tensor is a dense float32 tensor in NHWC layout.
type Tensor struct {
	Shape [4]int64  // (batch, height, width, channels)
	Data  []float32 // Row-major values
}

// Preprocess decodes data, drops alpha, stretches to Size x Size, scales each
// channel to [0,1] and adds a leading batch axis. The result is shaped
// (1, 256, 256, 3). Identical input bytes always give identical tensors.
func Preprocess(data []byte) (*Tensor, error) {
	// STEP 1: Decode to an opaque RGB grid
	if len(data) == 0 {
		return nil, apperr.New(apperr.ErrDecode, "Invalid image file")
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrDecode, "Invalid image file", err)
	}
	rgb := toRGB(img)

	// STEP 2: Resize to a fixed square, aspect ratio not preserved
	resized, ok := resize.Resize(Size, Size, rgb, resize.Bicubic).(*image.RGBA)
	if !ok { // nfnt/resize keeps *image.RGBA input as *image.RGBA
		resized = toRGB(resize.Resize(Size, Size, rgb, resize.Bicubic))
	}

	// STEP 3 + 4: Normalize into a batch of one
	return normalize(resized), nil
}

// toRGB copies img into an opaque RGBA image. Alpha is discarded rather than
// composited, so colour values are the straight (non-premultiplied) ones.
func toRGB(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			i := out.PixOffset(x-b.Min.X, y-b.Min.Y)
			out.Pix[i+0] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = 0xff
		}
	}
	return out
}

func normalize(img *image.RGBA) *Tensor {
	b := img.Bounds()
	h, w := b.Dy(), b.Dx()
	data := make([]float32, 0, h*w*Channels)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			data = append(data,
				float32(img.Pix[i+0])/255,
				float32(img.Pix[i+1])/255,
				float32(img.Pix[i+2])/255,
			)
		}
	}
	return &Tensor{Shape: [4]int64{1, int64(h), int64(w), Channels}, Data: data}
}

// Len returns the element count implied by the shape.
func (t *Tensor) Len() int {
	n := int64(1)
	for _, d := range t.Shape {
		n *= d
	}
	return int(n)
}
