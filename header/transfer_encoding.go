package header

const transferEncodingChunked = "chunked"

// IsChunked reports whether the Transfer-Encoding header value is exactly
// "chunked".
func (h Headers) IsChunked() bool {
	raw, ok := h.Get(NameTransferEncoding)
	return ok && raw == transferEncodingChunked
}
