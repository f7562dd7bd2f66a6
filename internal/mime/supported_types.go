package mime

// cSpell:ignore stdmime
import stdmime "mime"

func init() {
	// The Dog API image collections are served as static files whose
	// extension is the only hint about their type. Register the ones seen in
	// the collections so that lookups by extension work regardless of the
	// system mime tables.
	stdmime.AddExtensionType(".jpg", "image/jpeg")
	stdmime.AddExtensionType(".jpeg", "image/jpeg")
	stdmime.AddExtensionType(".png", "image/png")
	stdmime.AddExtensionType(".gif", "image/gif")
	stdmime.AddExtensionType(".webp", "image/webp")
}

// TypeByExtension returns the MIME type for the extension ext, which must
// include the leading dot. Parameters such as charset are not included. An
// empty string is returned if the type is unknown.
func TypeByExtension(ext string) string {
	t := stdmime.TypeByExtension(ext)
	if t == "" {
		return ""
	}
	mediaType, _, err := stdmime.ParseMediaType(t)
	if err != nil {
		return t
	}
	return mediaType
}
