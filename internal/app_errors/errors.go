package app_errors

import "errors"

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrIncorrectPassword = errors.New("incorrect password")
var ErrTokenNotFound = errors.New("token not found")
var ErrTokenExpired = errors.New("token expired")
var ErrCourseNotFound = errors.New("course not found")
var ErrNotEnrolled = errors.New("not enrolled in course")
var ErrNotImage = errors.New("not image")
var ErrFileSize = errors.New("file size error")
var ErrEmptyComment = errors.New("empty comment")
