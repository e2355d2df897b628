package config

type StorageConfig struct {
	UploadDir string
}

func loadStorageConfig() *StorageConfig {
	return &StorageConfig{
		UploadDir: envString("UPLOAD_DIR", "./uploads"),
	}
}
