package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lantern-cms/lantern/internal/web/cms/dto"
	"github.com/lantern-cms/lantern/internal/web/cms/model"
)

func TestCategorySlug(t *testing.T) {
	t.Parallel()

	require.Equal(t, "tech",
		categorySlug(&dto.CategoryRequest{Name: "ignored", Slug: " Tech "}))
	require.Equal(t, "my-category",
		categorySlug(&dto.CategoryRequest{Name: "My Category!"}))
}

func TestCategoryFieldsBlanksClear(t *testing.T) {
	t.Parallel()

	cate := &model.Category{
		Name:           "Old",
		Slug:           "old",
		ParentCategory: primitive.NewObjectID(),
		Description:    "old description",
		Keywords:       "old,keywords",
	}

	categoryFields(cate, &dto.CategoryRequest{}, "New", "new", primitive.NilObjectID)

	require.Equal(t, "New", cate.Name)
	require.Equal(t, "new", cate.Slug)
	require.True(t, cate.ParentCategory.IsZero())
	require.Empty(t, cate.Description)
	require.Empty(t, cate.Keywords)

	categoryFields(cate, &dto.CategoryRequest{
		Description: " fresh ",
		Keywords:    " a,b ",
	}, "New", "new", primitive.NilObjectID)

	require.Equal(t, "fresh", cate.Description)
	require.Equal(t, "a,b", cate.Keywords)
}
