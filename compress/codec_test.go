package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freef4ll/redpanda/errs"
	"github.com/freef4ll/redpanda/format"
	"github.com/freef4ll/redpanda/fragbuf"
)

// mkBuf builds a fragmented buffer holding data, growing through the
// allocation table the same way the write path assembles payloads.
func mkBuf(data []byte) *fragbuf.Buffer {
	buf := fragbuf.New()
	buf.Append(data)

	return buf
}

// Test CompressionType String() method
func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		name     string
		cType    format.CompressionType
		expected string
	}{
		{
			name:     "none compression",
			cType:    format.CompressionNone,
			expected: "None",
		},
		{
			name:     "gzip compression",
			cType:    format.CompressionGzip,
			expected: "Gzip",
		},
		{
			name:     "lz4 compression",
			cType:    format.CompressionLZ4,
			expected: "LZ4",
		},
		{
			name:     "snappy java compression",
			cType:    format.CompressionSnappyJava,
			expected: "SnappyJava",
		},
		{
			name:     "snappy compression",
			cType:    format.CompressionSnappy,
			expected: "Snappy",
		},
		{
			name:     "zstd compression",
			cType:    format.CompressionZstd,
			expected: "Zstd",
		},
		{
			name:     "unknown compression",
			cType:    format.CompressionType(0xFF),
			expected: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.cType.String()
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestCreateCodec(t *testing.T) {
	validTypes := []format.CompressionType{
		format.CompressionNone,
		format.CompressionGzip,
		format.CompressionLZ4,
		format.CompressionSnappyJava,
		format.CompressionSnappy,
		format.CompressionZstd,
	}

	for _, cType := range validTypes {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := CreateCodec(cType, "record batch")
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}

	t.Run("unknown type", func(t *testing.T) {
		codec, err := CreateCodec(format.CompressionType(0x7F), "record batch")
		require.Nil(t, codec)
		require.ErrorIs(t, err, errs.ErrUnknownCompression)
		require.ErrorContains(t, err, "record batch")
	})
}

func TestGetCodec(t *testing.T) {
	t.Run("returns registered codecs", func(t *testing.T) {
		for cType := format.CompressionNone; cType <= format.CompressionZstd; cType++ {
			codec, err := GetCodec(cType)
			require.NoError(t, err)
			require.NotNil(t, codec)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		codec, err := GetCodec(format.CompressionType(0xAB))
		require.Nil(t, codec)
		require.ErrorIs(t, err, errs.ErrUnknownCompression)
	})
}

// Test CompressionStats calculation methods
func TestCompressionStats_Calculations(t *testing.T) {
	tests := []struct {
		name            string
		stats           CompressionStats
		expectedRatio   float64
		expectedSavings float64
	}{
		{
			name: "good compression",
			stats: CompressionStats{
				Algorithm:      format.CompressionZstd,
				OriginalSize:   1000,
				CompressedSize: 300,
			},
			expectedRatio:   0.3,
			expectedSavings: 70.0,
		},
		{
			name: "no compression benefit",
			stats: CompressionStats{
				Algorithm:      format.CompressionNone,
				OriginalSize:   500,
				CompressedSize: 500,
			},
			expectedRatio:   1.0,
			expectedSavings: 0.0,
		},
		{
			name: "compression overhead",
			stats: CompressionStats{
				Algorithm:      format.CompressionSnappy,
				OriginalSize:   100,
				CompressedSize: 120,
			},
			expectedRatio:   1.2,
			expectedSavings: -20.0,
		},
		{
			name: "zero original size",
			stats: CompressionStats{
				Algorithm:      format.CompressionLZ4,
				OriginalSize:   0,
				CompressedSize: 100,
			},
			expectedRatio:   0.0,
			expectedSavings: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratio := tt.stats.CompressionRatio()
			require.InDelta(t, tt.expectedRatio, ratio, 0.001)

			savings := tt.stats.SpaceSavings()
			require.InDelta(t, tt.expectedSavings, savings, 0.001)
		})
	}
}

func TestStatsFor(t *testing.T) {
	original := mkBuf(bytes.Repeat([]byte("sample"), 1000))

	codec := NewGzipCodec()
	compressed, err := codec.Compress(original)
	require.NoError(t, err)

	stats := StatsFor(format.CompressionGzip, original, compressed)
	require.Equal(t, format.CompressionGzip, stats.Algorithm)
	require.Equal(t, int64(original.Len()), stats.OriginalSize)
	require.Equal(t, int64(compressed.Len()), stats.CompressedSize)
	require.Less(t, stats.CompressionRatio(), 1.0, "repeated text must compress")
}

func TestNoopCodec_RoundTrip(t *testing.T) {
	codec := NewNoopCodec()

	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "small text data",
			data: []byte("hello world"),
		},
		{
			name: "binary data",
			data: []byte{0x00, 0x01, 0x02, 0xFF, 0xFE, 0xFD},
		},
		{
			name: "large payload",
			data: make([]byte, 64*1024),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := fragbuf.FromBytes(tt.data)

			// Compress
			compressed, err := codec.Compress(original)
			require.NoError(t, err)
			require.True(t, original.Equal(compressed))
			require.Same(t, &tt.data[0], &compressed.Bytes()[0], "pass-through must not copy")

			// Uncompress
			restored, err := codec.Uncompress(compressed)
			require.NoError(t, err)
			require.True(t, original.Equal(restored))
			require.Same(t, &tt.data[0], &restored.Bytes()[0], "pass-through must not copy")
		})
	}
}

// getAllCodecs returns all built-in codec implementations for testing.
func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"Noop":       NewNoopCodec(),
		"Gzip":       NewGzipCodec(),
		"LZ4":        NewLZ4Codec(),
		"SnappyJava": NewSnappyJavaCodec(),
		"Snappy":     NewSnappyCodec(),
		"Zstd":       NewZstdCodec(),
	}
}

// TestAllCodecs_EmptyData tests that all codecs handle an empty payload correctly
func TestAllCodecs_EmptyData(t *testing.T) {
	codecs := getAllCodecs()

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(fragbuf.New())
			require.NoError(t, err)
			require.NotNil(t, compressed)

			if name != "Noop" {
				require.Positive(t, compressed.Len(), "an empty payload must still produce complete framing")
			}

			restored, err := codec.Uncompress(compressed)
			require.NoError(t, err)
			require.Equal(t, 0, restored.Len(), "restoring a compressed empty payload must yield an empty buffer")
		})
	}
}

// TestAllCodecs_RoundTrip tests compression and decompression round-trip for all codecs
func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{
			name: "small_text",
			data: []byte("Hello, World!"),
		},
		{
			name: "repeated_pattern",
			data: bytes.Repeat([]byte("ABCD"), 100),
		},
		{
			name: "binary_data",
			data: []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD, 0xFC},
		},
		{
			name: "single_byte",
			data: []byte{0x42},
		},
		{
			name: "medium_payload",
			data: bytes.Repeat([]byte("key=broker-7 offset=1234567890 value=3.14159 "), 256),
		},
		{
			name: "large_payload",
			data: bytes.Repeat([]byte("key=broker-7 offset=1234567890 value=3.14159 "), 4096),
		},
		{
			name: "pseudo_random",
			data: func() []byte {
				// Create pseudo-random data that is semi-compressible
				data := make([]byte, 4096)
				for i := range data {
					if i%100 < 50 {
						data[i] = byte(i % 256)
					} else {
						data[i] = byte((i*7 + i*i) % 256)
					}
				}

				return data
			}(),
		},
		{
			name: "highly_compressible",
			data: make([]byte, 1024*1024),
		},
	}

	codecs := getAllCodecs()

	for codecName, codec := range codecs {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					original := mkBuf(tc.data)

					// Compress
					compressed, err := codec.Compress(original)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					// Log compression stats
					ratio := float64(compressed.Len()) / float64(original.Len()) * 100
					t.Logf("Original: %d bytes, Compressed: %d bytes, Ratio: %.2f%%",
						original.Len(), compressed.Len(), ratio)

					// Uncompress
					restored, err := codec.Uncompress(compressed)
					require.NoError(t, err)
					require.Equal(t, original.Len(), restored.Len(), "length must match")
					require.True(t, original.Equal(restored), "restored content must match original")
				})
			}
		})
	}
}

// TestAllCodecs_InvalidData tests that all codecs reject invalid compressed data
func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{
			name: "random_bytes",
			data: []byte{0xFF, 0xFF, 0xFF, 0xFF},
		},
		{
			name: "text_as_compressed",
			data: []byte("this is not compressed data"),
		},
		{
			name: "corrupted_header",
			data: []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
		},
	}

	codecs := getAllCodecs()

	for codecName, codec := range codecs {
		t.Run(codecName, func(t *testing.T) {
			// The Noop codec doesn't validate data, so skip invalid data tests
			if codecName == "Noop" {
				t.Skip("Noop codec doesn't validate data")
				return
			}

			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Uncompress(mkBuf(input.data))
					require.Error(t, err, "should return error for invalid compressed data")
					require.ErrorIs(t, err, errs.ErrMalformedInput, "decode failures must be reported as malformed input")
				})
			}
		})
	}
}

// TestAllCodecs_UncompressEmptyInput tests that a zero-byte payload is
// rejected as malformed by every framed codec instead of silently decoding
// to nothing.
func TestAllCodecs_UncompressEmptyInput(t *testing.T) {
	codecs := getAllCodecs()

	for codecName, codec := range codecs {
		t.Run(codecName, func(t *testing.T) {
			// The Noop codec has no framing, so an empty payload passes
			// through rather than being malformed.
			if codecName == "Noop" {
				restored, err := codec.Uncompress(fragbuf.New())
				require.NoError(t, err)
				require.Equal(t, 0, restored.Len())
				return
			}

			_, err := codec.Uncompress(fragbuf.New())
			require.Error(t, err, "a zero-byte payload carries no framing and must be rejected")
			require.ErrorIs(t, err, errs.ErrMalformedInput)
		})
	}
}

// TestAllCodecs_ConcurrentUsage tests that all codecs are safe for concurrent
// use on distinct buffers.
func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 20
	testData := []byte("Concurrent compression test data with some content to compress")

	codecs := getAllCodecs()

	for codecName, codec := range codecs {
		t.Run(codecName, func(t *testing.T) {
			source := mkBuf(testData)
			compressed, err := codec.Compress(source.Clone())
			require.NoError(t, err)

			t.Run("concurrent_compress", func(t *testing.T) {
				done := make(chan error, numGoroutines)

				for range numGoroutines {
					go func() {
						result, err := codec.Compress(source.Clone())
						if err != nil {
							done <- err
							return
						}
						if result == nil {
							done <- fmt.Errorf("compressed result is nil")
							return
						}
						done <- nil
					}()
				}

				for range numGoroutines {
					require.NoError(t, <-done)
				}
			})

			t.Run("concurrent_uncompress", func(t *testing.T) {
				done := make(chan error, numGoroutines)

				for range numGoroutines {
					go func() {
						restored, err := codec.Uncompress(compressed.Clone())
						if err != nil {
							done <- err
							return
						}
						if !restored.Equal(source) {
							done <- fmt.Errorf("restored data mismatch")
							return
						}
						done <- nil
					}()
				}

				for range numGoroutines {
					require.NoError(t, <-done)
				}
			})

			t.Run("concurrent_mixed", func(t *testing.T) {
				done := make(chan error, numGoroutines*2)

				for range numGoroutines {
					go func() {
						_, err := codec.Compress(source.Clone())
						done <- err
					}()

					go func() {
						restored, err := codec.Uncompress(compressed.Clone())
						if err != nil {
							done <- err
							return
						}
						if !restored.Equal(source) {
							done <- fmt.Errorf("data mismatch")
							return
						}
						done <- nil
					}()
				}

				for range numGoroutines * 2 {
					require.NoError(t, <-done)
				}
			})
		})
	}
}

// TestAllCodecs_InterfaceCompliance verifies that all codecs implement the Codec interface
func TestAllCodecs_InterfaceCompliance(t *testing.T) {
	codecs := getAllCodecs()

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			require.Implements(t, (*Compressor)(nil), codec)
			require.Implements(t, (*Decompressor)(nil), codec)
			require.Implements(t, (*Codec)(nil), codec)
		})
	}
}

// TestAllCodecs_LargeExpansionRatio tests codecs with highly compressible data
func TestAllCodecs_LargeExpansionRatio(t *testing.T) {
	// Highly compressible input (1MB of zeros)
	original := mkBuf(make([]byte, 1024*1024))

	codecs := getAllCodecs()

	for codecName, codec := range codecs {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(original)
			require.NoError(t, err)
			require.NotNil(t, compressed)

			ratio := float64(compressed.Len()) / float64(original.Len()) * 100
			t.Logf("Compressed %d bytes to %d bytes (%.4f%% of original)",
				original.Len(), compressed.Len(), ratio)

			if codecName == "Noop" {
				require.Equal(t, original.Len(), compressed.Len())
			} else {
				require.Less(t, compressed.Len(), original.Len()/10,
					"should compress to less than 10% of original for highly compressible data")
			}

			restored, err := codec.Uncompress(compressed)
			require.NoError(t, err)
			require.True(t, original.Equal(restored))
		})
	}
}

// TestAllCodecs_ProgressiveDataSizes tests various data sizes from tiny to large
func TestAllCodecs_ProgressiveDataSizes(t *testing.T) {
	sizes := []int{
		1,       // 1 byte
		10,      // 10 bytes
		100,     // 100 bytes
		1024,    // 1 KB
		4096,    // 4 KB
		16384,   // 16 KB
		65536,   // 64 KB
		262144,  // 256 KB
		1048576, // 1 MB
	}

	codecs := getAllCodecs()

	for codecName, codec := range codecs {
		t.Run(codecName, func(t *testing.T) {
			for _, size := range sizes {
				t.Run(fmt.Sprintf("%d_bytes", size), func(t *testing.T) {
					data := make([]byte, size)
					for i := range data {
						data[i] = byte(i % 256)
					}
					original := mkBuf(data)

					compressed, err := codec.Compress(original)
					require.NoError(t, err)

					restored, err := codec.Uncompress(compressed)
					require.NoError(t, err)
					require.True(t, original.Equal(restored))
				})
			}
		})
	}
}
