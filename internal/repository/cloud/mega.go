package cloud

import (
	"log"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
	"github.com/t3rm1n4l/go-mega"
)

// CloudObject holds the logged-in MEGA session and the folder every listing photo lives in.
type CloudObject struct {
	connect    *mega.Mega
	mainfolder *mega.Node
}

func NewMegaClient(config configs.MegaConfig) (*CloudObject, error) {
	client := mega.New()
	if err := client.Login(config.Email, config.Password); err != nil {
		log.Printf("[DEBUG] [Ads-Service] Failed to establish Mega-Client connection: %v", err)
		return nil, err
	}
	folder, err := photoFolder(client, config.MainDirectory)
	if err != nil {
		log.Printf("[DEBUG] [Ads-Service] Failed to get the main directory: %v", err)
		return nil, err
	}
	log.Println("[DEBUG] [Ads-Service] Successful connect to Mega-Client")
	return &CloudObject{connect: client, mainfolder: folder}, nil
}

// photoFolder finds the photo directory under the root and creates it on first start.
func photoFolder(client *mega.Mega, name string) (*mega.Node, error) {
	root := client.FS.GetRoot()
	children, err := client.FS.GetChildren(root)
	if err != nil {
		return nil, err
	}
	for _, node := range children {
		if node.GetType() == mega.FOLDER && node.GetName() == name {
			return node, nil
		}
	}
	log.Printf("[DEBUG] [Ads-Service] Directory %q not found on Mega, creating it", name)
	return client.CreateDir(name, root)
}
