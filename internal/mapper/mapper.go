// Package mapper — чистые преобразования между доменными моделями и DTO.
// Без побочных эффектов и без обращений к хранилищу.
package mapper

import (
	"github.com/GoArmGo/UserPostApp/internal/apperrors"
	"github.com/GoArmGo/UserPostApp/internal/domain"
	"github.com/GoArmGo/UserPostApp/internal/dto"
)

// PostToDTO маппит доменный Post в PostDTO.
// Пост без владельца — нарушение целостности данных выше по стеку,
// поэтому MapperError, а не молча собранный кривой DTO.
func PostToDTO(post *domain.Post) (dto.PostDTO, error) {
	if post == nil {
		return dto.PostDTO{}, &apperrors.MapperError{Message: "Mapper received nil Post."}
	}
	if post.UserID == 0 {
		return dto.PostDTO{}, &apperrors.MapperError{Message: "Mapper received Post with no owner."}
	}

	id := post.ID
	return dto.PostDTO{
		ID:        &id,
		Title:     post.Title,
		Text:      post.Text,
		CreatedAt: post.CreatedAt,
		UserID:    post.UserID,
	}, nil
}

// PostToEntity маппит PostDTO в доменный Post.
// Id и CreatedAt назначаются хранилищем и из DTO не копируются,
// владельца назначает сервис.
func PostToEntity(postDTO *dto.PostDTO) (*domain.Post, error) {
	if postDTO == nil {
		return nil, &apperrors.MapperError{Message: "Mapper received nil PostDTO."}
	}

	return &domain.Post{
		Title: postDTO.Title,
		Text:  postDTO.Text,
	}, nil
}

// UserToDTO маппит доменного User вместе с его постами в UserDTO.
func UserToDTO(user *domain.User) (dto.UserDTO, error) {
	if user == nil {
		return dto.UserDTO{}, &apperrors.MapperError{Message: "Mapper received nil User."}
	}

	posts := make([]dto.PostDTO, 0, len(user.Posts))
	for i := range user.Posts {
		postDTO, err := PostToDTO(&user.Posts[i])
		if err != nil {
			return dto.UserDTO{}, err
		}
		posts = append(posts, postDTO)
	}

	id := user.ID
	return dto.UserDTO{
		ID:        &id,
		UserName:  user.UserName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Posts:     posts,
	}, nil
}

// UserToEntity маппит UserDTO в доменного User.
// Id и CreatedAt из DTO не копируются никогда: какие поля применять
// на update-пути, решает сервис, а не маппер.
func UserToEntity(userDTO *dto.UserDTO) (*domain.User, error) {
	if userDTO == nil {
		return nil, &apperrors.MapperError{Message: "Mapper received nil UserDTO."}
	}

	user := &domain.User{
		UserName: userDTO.UserName,
		Email:    userDTO.Email,
	}

	for i := range userDTO.Posts {
		post, err := PostToEntity(&userDTO.Posts[i])
		if err != nil {
			return nil, err
		}
		user.Posts = append(user.Posts, *post)
	}

	return user, nil
}
