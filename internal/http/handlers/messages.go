package handlers

// Error codes shared between the API envelope and the localized catalog.
const (
	codeValidation       = "validation"
	codeFileRead         = "file_read"
	codeNoImageReturned  = "no_image_returned"
	codeGenerationFailed = "generation_failed"
	codeEditInFlight     = "edit_in_flight"
	codeNoResult         = "no_result"
	codeBadRequest       = "bad_request"
	codeUploadTooLarge   = "upload_too_large"
)

var messages = map[string]map[string]string{
	codeValidation: {
		"en": "Please upload an image and enter a prompt.",
		"id": "Silakan unggah gambar dan masukkan prompt.",
	},
	codeFileRead: {
		"en": "Could not read the selected file.",
		"id": "Berkas yang dipilih tidak dapat dibaca.",
	},
	codeNoImageReturned: {
		"en": "No image data was found in the API response.",
		"id": "Tidak ada data gambar pada respons API.",
	},
	codeGenerationFailed: {
		"en": "Something went wrong while generating the image. Please try again.",
		"id": "Terjadi kesalahan saat membuat gambar. Silakan coba lagi.",
	},
	codeEditInFlight: {
		"en": "An edit is already in progress. Please wait for it to finish.",
		"id": "Masih ada proses edit yang berjalan. Mohon tunggu sebentar.",
	},
	codeNoResult: {
		"en": "No edited image is available yet.",
		"id": "Belum ada hasil edit yang tersedia.",
	},
	codeBadRequest: {
		"en": "Invalid request payload.",
		"id": "Permintaan tidak valid.",
	},
	codeUploadTooLarge: {
		"en": "The selected file exceeds the upload limit.",
		"id": "Ukuran berkas melebihi batas unggah.",
	},
}

func localize(locale, code string) string {
	byLocale, ok := messages[code]
	if !ok {
		return messages[codeGenerationFailed][fallbackOrEn(locale)]
	}
	if msg, ok := byLocale[locale]; ok {
		return msg
	}
	return byLocale["en"]
}

func fallbackOrEn(locale string) string {
	if _, ok := messages[codeGenerationFailed][locale]; ok {
		return locale
	}
	return "en"
}
