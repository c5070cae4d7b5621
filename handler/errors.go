package handler

import (
	"errors"

	"smarttech/pkg/response"
	"smarttech/service"
)

// 业务错误码
const (
	codeNotFound           = 40400
	codeOutOfStock         = 40001
	codeBadVariant         = 40002
	codeMissingEvidence    = 40003
	codeInvalidSignature   = 40004
	codeBadTransition      = 40005
	codeSessionExpired     = 40006
	codeGatewayUnreachable = 50201
)

// mapErr 服务层错误转业务错误，未知错误原样抛出
func mapErr(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return response.NewError(codeNotFound, err.Error())
	case errors.Is(err, service.ErrOutOfStock):
		return response.NewError(codeOutOfStock, err.Error())
	case errors.Is(err, service.ErrMissingVariantSelector),
		errors.Is(err, service.ErrUnknownVariant):
		return response.NewError(codeBadVariant, err.Error())
	case errors.Is(err, service.ErrMissingEvidence):
		return response.NewError(codeMissingEvidence, err.Error())
	case errors.Is(err, service.ErrInvalidSignature):
		return response.NewError(codeInvalidSignature, err.Error())
	case errors.Is(err, service.ErrInvalidStatusTransition):
		return response.NewError(codeBadTransition, err.Error())
	case errors.Is(err, service.ErrSessionExpired):
		return response.NewError(codeSessionExpired, err.Error())
	case errors.Is(err, service.ErrGatewayUnavailable):
		return response.NewError(codeGatewayUnreachable, err.Error())
	}
	return err
}
