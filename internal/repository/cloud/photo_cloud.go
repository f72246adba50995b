package cloud

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/repository"
	"github.com/t3rm1n4l/go-mega"
)

const PhotoExt = ".jpg"

var errNotCloudLink = errors.New("reference is not a cloud link")

type PhotoCloud struct {
	cloudclient *CloudObject
}

func NewPhotoCloud(cl *CloudObject) *PhotoCloud {
	return &PhotoCloud{cloudclient: cl}
}

// PublicHandle extracts the public handle from a link of the form <base>/#!<handle>!<key>.
func PublicHandle(link string) (string, error) {
	_, fragment, found := strings.Cut(link, "#!")
	if !found {
		return "", errNotCloudLink
	}
	handle, _, found := strings.Cut(fragment, "!")
	if !found || handle == "" {
		return "", errNotCloudLink
	}
	return handle, nil
}

// UploadFile returns the public link of the uploaded file; the file is renamed to the link handle.
func (client *PhotoCloud) UploadFile(ctx context.Context, localfilepath string, photoid string) *repository.RepositoryResponse {
	const place = repository.UploadFile
	select {
	case <-ctx.Done():
		return repository.BadResponse(erro.ServerError(erro.ErrorContextCanceled), place)
	default:
	}
	filename := photoid + PhotoExt
	progresschan := make(chan int)
	uploaded := make(chan int, 1)
	go func() {
		totalbytes := 0
		for data := range progresschan {
			totalbytes += data
		}
		uploaded <- totalbytes
	}()
	uploadedFile, err := client.cloudclient.connect.UploadFile(localfilepath, client.cloudclient.mainfolder, filename, &progresschan)
	if err != nil {
		metrics.AdsCloudOperationsTotal.WithLabelValues("upload", "error").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorUploadPhoto, filename, err)), place)
	}
	link, err := client.cloudclient.connect.Link(uploadedFile, true)
	if err != nil {
		metrics.AdsCloudOperationsTotal.WithLabelValues("upload", "error").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorPublicLink, filename, err)), place)
	}
	handle, err := PublicHandle(link)
	if err == nil {
		err = client.cloudclient.connect.Rename(uploadedFile, handle+PhotoExt)
	}
	if err != nil {
		metrics.AdsCloudOperationsTotal.WithLabelValues("upload", "error").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorPublicLink, filename, err)), place)
	}
	metrics.AdsCloudOperationsTotal.WithLabelValues("upload", "success").Inc()
	select {
	case <-ctx.Done():
		return repository.BadResponse(erro.ServerError(erro.ErrorContextCanceled), place)
	case tb := <-uploaded:
		return repository.SuccessResponse(repository.Data{PhotoURL: link}, place, fmt.Sprintf("Photo was successfully uploaded to the cloud (%v bytes uploaded)", tb))
	}
}

// DeleteFile removes the cloud file behind link; references that are not cloud links are left alone.
func (client *PhotoCloud) DeleteFile(ctx context.Context, link string) *repository.RepositoryResponse {
	const place = repository.DeleteFile
	handle, err := PublicHandle(link)
	if err != nil {
		return repository.SuccessResponse(repository.Data{}, place, fmt.Sprintf("Photo %s is not stored in the cloud", link))
	}
	filename := handle + PhotoExt
	file, err := client.findFileByName(ctx, client.cloudclient.mainfolder, filename)
	if err != nil {
		metrics.AdsCloudOperationsTotal.WithLabelValues("delete", "error").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorFindPhoto, filename, err)), place)
	}
	select {
	case <-ctx.Done():
		return repository.BadResponse(erro.ServerError(erro.ErrorContextCanceled), place)
	default:
	}
	err = client.cloudclient.connect.Delete(file, true)
	if err != nil {
		metrics.AdsCloudOperationsTotal.WithLabelValues("delete", "error").Inc()
		return repository.BadResponse(erro.ServerError(fmt.Sprintf(erro.ErrorDeletePhoto, filename, err)), place)
	}
	metrics.AdsCloudOperationsTotal.WithLabelValues("delete", "success").Inc()
	return repository.SuccessResponse(repository.Data{}, place, "Photo was successfully deleted from cloud")
}
func (client *PhotoCloud) findFileByName(ctx context.Context, node *mega.Node, name string) (*mega.Node, error) {
	select {
	case <-ctx.Done():
		return nil, errors.New(erro.ErrorContextCanceled)
	default:
	}
	children, err := client.cloudclient.connect.FS.GetChildren(node)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		if child.GetName() == name {
			return child, nil
		}
	}
	return nil, errors.New("photo file was not found in directory")
}
