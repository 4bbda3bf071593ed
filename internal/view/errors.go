package view

import "errors"

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrNoLayout         = errors.New("layout template is missing")
)
