package handler

import (
	"path/filepath"
	"strings"

	"smarttech/config"
	"smarttech/middleware"
	ctx "smarttech/pkg/context"
	"smarttech/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Upload 图片上传（商品图、广告图、UPI 付款截图）
type Upload struct {
	Conf *config.Config
}

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func (h *Upload) RegisterRouter(r gin.IRouter, conf *config.Config) {
	g := r.Group("/api/upload", middleware.Auth(conf))
	g.POST("/image", ctx.Wrap(h.Image))
	r.Static("/uploads", conf.Upload.Dir)
}

func (h *Upload) Image(c *gin.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.NewError(400, "缺少上传文件")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExt[ext] {
		return response.NewError(400, "不支持的文件类型")
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(h.Conf.Upload.Dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return err
	}

	response.Success(c, gin.H{"path": "/uploads/" + name})
	return nil
}
