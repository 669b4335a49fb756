package audio

import (
	"encoding/binary"
	"time"
)

// WAV container constants.
const (
	// HeaderSize is the size of the RIFF/WAVE header emitted by EncodeWAV.
	HeaderSize = 44

	// formatPCM is the WAV format tag for uncompressed PCM.
	formatPCM = 1
)

// PCM profile produced by the Gemini speech models (linear16, mono, 24 kHz).
const (
	GeminiSampleRate    = 24000
	GeminiChannels      = 1
	GeminiBitsPerSample = 16
)

// MIMETypeWAV is the MIME type reported for container-encoded output.
const MIMETypeWAV = "audio/wav"

// EncodeWAV wraps raw little-endian 16-bit PCM data in a WAV container.
// The input bytes are copied after the 44-byte header unmodified: no
// resampling, no bit-depth conversion, and no length-parity validation
// (an odd-length buffer is wrapped as-is). The output is deterministic
// for a given input.
func EncodeWAV(pcm []byte, sampleRate, channels, bitsPerSample int) []byte {
	dataSize := len(pcm)
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	out := make([]byte, HeaderSize+dataSize)

	// RIFF chunk descriptor
	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+dataSize))
	copy(out[8:12], "WAVE")

	// fmt sub-chunk (16-byte PCM block)
	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], formatPCM)
	binary.LittleEndian.PutUint16(out[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:36], uint16(bitsPerSample))

	// data sub-chunk
	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(dataSize))
	copy(out[HeaderSize:], pcm)

	return out
}

// Duration reports the playback length of a raw PCM buffer with the given
// format parameters. Used for logging and metrics only.
func Duration(dataLen, sampleRate, channels, bitsPerSample int) time.Duration {
	byteRate := sampleRate * channels * bitsPerSample / 8
	if byteRate <= 0 {
		return 0
	}
	return time.Duration(float64(dataLen) / float64(byteRate) * float64(time.Second))
}
