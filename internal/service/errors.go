package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrSlugExists         = errors.New("slug already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrKeywordsRequired   = errors.New("at least one non-blank keyword is required")
	ErrLanguageInvalid    = errors.New("unsupported language")
)

// LinkedIn 分享相关错误
var (
	ErrLinkedInNotConfigured = errors.New("linkedin integration not configured")
	ErrLinkedInNotConnected  = errors.New("linkedin account not connected")
	ErrLinkedInStateMismatch = errors.New("linkedin state mismatch")
	ErrLinkedInCodeMissing   = errors.New("linkedin authorization code missing")
	ErrLinkedInTokenInvalid  = errors.New("linkedin token invalid")
)

// 邮件相关错误
var (
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)
