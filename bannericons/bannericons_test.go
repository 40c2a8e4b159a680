package bannericons_test

import (
	"bytes"
	"testing"

	"github.com/speakeasy-api/gamexml/bannericons"
	"github.com/speakeasy-api/gamexml/bannericons/core"
	"github.com/speakeasy-api/gamexml/internal/testutils"
	"github.com/speakeasy-api/gamexml/marshaller"
	"github.com/speakeasy-api/gamexml/pointer"
	"github.com/speakeasy-api/gamexml/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBannerIcons_RoundTrip_Success(t *testing.T) {
	t.Parallel()

	data := testutils.ReadFixture(t, "banner_icons.xml")

	c, err := marshaller.Deserialize[core.BannerIcons](t.Context(), data)
	require.NoError(t, err)

	out, err := marshaller.Serialize(t.Context(), c)
	require.NoError(t, err)
	testutils.RequireStructurallyEqual(t, data, out)
	assert.Equal(t, string(data), string(out), "formatting preferences of the source are reapplied")

	view, err := bannericons.FromCore(c)
	require.NoError(t, err)

	viaView, err := bannericons.Serialize(t.Context(), view)
	require.NoError(t, err)
	testutils.RequireStructurallyEqual(t, data, viaView)
}

func TestBannerIcons_Mapper_Idempotent(t *testing.T) {
	t.Parallel()

	c, err := marshaller.Deserialize[core.BannerIcons](t.Context(), testutils.ReadFixture(t, "banner_icons.xml"))
	require.NoError(t, err)

	view, err := bannericons.FromCore(c)
	require.NoError(t, err)
	assert.Equal(t, c, bannericons.ToCore(view))

	again, err := bannericons.FromCore(bannericons.ToCore(view))
	require.NoError(t, err)
	assert.Equal(t, view, again)
}

func TestBannerIcons_View_Success(t *testing.T) {
	t.Parallel()

	view, err := bannericons.Deserialize(t.Context(), testutils.ReadFixture(t, "banner_icons.xml"))
	require.NoError(t, err)

	assert.Equal(t, pointer.From("string"), view.Type)
	assert.Len(t, view.GetNamespaces(), 2)
	require.NotNil(t, view.BannerIconData)

	groups := view.BannerIconData.BannerIconGroups
	require.Len(t, groups, 3)

	id, err := groups[0].IDInt()
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, pointer.From(true), groups[0].IsPattern)
	assert.Equal(t, pointer.From(false), groups[1].IsPattern)
	assert.Nil(t, groups[2].IsPattern)
	assert.Nil(t, groups[2].Backgrounds)
	assert.Nil(t, groups[2].Icons)

	backgrounds := groups[0].Backgrounds
	require.Len(t, backgrounds, 3)
	assert.Equal(t, pointer.From(true), backgrounds[0].IsBaseBackground)
	assert.Nil(t, backgrounds[1].IsBaseBackground)
	assert.Equal(t, pointer.From(""), backgrounds[2].MeshName, "present but empty attribute")

	icons := groups[1].Icons
	require.Len(t, icons, 2)
	index, err := icons[1].TextureIndexInt()
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Equal(t, pointer.From(true), icons[1].IsReserved)

	colors := view.BannerIconData.BannerColors.Colors
	require.Len(t, colors, 3)
	assert.Equal(t, pointer.From("0xffB57A1E"), colors[0].Hex)
	assert.Nil(t, colors[1].PlayerCanChooseForBackground)
	assert.Equal(t, pointer.From(false), colors[1].PlayerCanChooseForSigil)
}

func TestBannerIcons_Edit_Success(t *testing.T) {
	t.Parallel()

	data := testutils.ReadFixture(t, "banner_icons.xml")
	view, err := bannericons.Deserialize(t.Context(), data)
	require.NoError(t, err)

	icon := view.BannerIconData.BannerIconGroups[1].Icons[0]
	icon.SetTextureIndex(7)
	icon.SetID(200)
	view.BannerIconData.BannerIconGroups[1].Icons[1].ClearTextureIndex()
	view.BannerIconData.BannerColors = nil

	var buf bytes.Buffer
	require.NoError(t, bannericons.Marshal(t.Context(), view, &buf))

	report := testutils.RequireDiff(t, data, buf.Bytes())
	assert.Equal(t, []string{"/base/BannerIconData/BannerColors"}, report.MissingNodes)
	assert.Empty(t, report.ExtraNodes)
	require.Len(t, report.AttributeValueDifferences, 2)
	assert.Equal(t, "id", report.AttributeValueDifferences[0].Attribute)
	assert.Equal(t, "200", report.AttributeValueDifferences[0].Actual)
	assert.Equal(t, "texture_index", report.AttributeValueDifferences[1].Attribute)
	assert.Equal(t, "7", report.AttributeValueDifferences[1].Actual)
	require.Len(t, report.MissingAttributes, 1)
	assert.Equal(t, "/base/BannerIconData/BannerIconGroup[2]/Icon[2]", report.MissingAttributes[0].Path)
	assert.Equal(t, "texture_index", report.MissingAttributes[0].Attribute)
}

func TestBannerIcons_BooleanCanonicalisation_Success(t *testing.T) {
	t.Parallel()

	data := []byte(`<base><BannerIconData><BannerIconGroup id="1" is_pattern="1"/></BannerIconData></base>`)

	view, err := bannericons.Deserialize(t.Context(), data)
	require.NoError(t, err)
	assert.Equal(t, pointer.From(true), view.BannerIconData.BannerIconGroups[0].IsPattern)

	out, err := bannericons.Serialize(t.Context(), view)
	require.NoError(t, err)

	report := testutils.RequireDiff(t, data, out)
	require.Len(t, report.AttributeValueDifferences, 1)
	assert.Equal(t, "1", report.AttributeValueDifferences[0].Expected)
	assert.Equal(t, "true", report.AttributeValueDifferences[0].Actual)
	report.AttributeValueDifferences = nil
	assert.True(t, report.IsStructurallyEqual(), report.String())
}

func TestBannerIcons_EmptyElements_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		xml  string
	}{
		{name: "empty root", xml: `<base/>`},
		{name: "empty data", xml: `<base type="string"><BannerIconData/></base>`},
		{name: "empty colors", xml: `<base><BannerIconData><BannerColors/></BannerIconData></base>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			view, err := bannericons.Deserialize(t.Context(), []byte(tt.xml))
			require.NoError(t, err)

			out, err := bannericons.Serialize(t.Context(), view)
			require.NoError(t, err)
			assert.Equal(t, tt.xml, string(out))
		})
	}
}

func TestBannerIcons_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		xml     string
		wantErr error
	}{
		{name: "malformed", xml: `<base><BannerIconData></base>`, wantErr: validation.ErrParse},
		{name: "wrong root", xml: `<banner_icons/>`, wantErr: validation.ErrSchemaMismatch},
		{name: "missing group id", xml: `<base><BannerIconData><BannerIconGroup/></BannerIconData></base>`, wantErr: validation.ErrSchemaMismatch},
		{name: "unknown boolean spelling", xml: `<base><BannerIconData><BannerIconGroup id="1" is_pattern="maybe"/></BannerIconData></base>`, wantErr: validation.ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := bannericons.Deserialize(t.Context(), []byte(tt.xml))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIcon_TextureIndexInt_Error(t *testing.T) {
	t.Parallel()

	icon := &bannericons.Icon{TextureIndex: pointer.From("first")}
	_, err := icon.TextureIndexInt()
	require.ErrorIs(t, err, validation.ErrFormat)

	icon.ClearTextureIndex()
	index, err := icon.TextureIndexInt()
	require.NoError(t, err)
	assert.Equal(t, 0, index)
}

func TestBannerIcons_SiblingOrder_RoundTrip_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		xml  string
	}{
		{
			name: "unknown element before a known child",
			xml:  `<base><note/><BannerIconData/></base>`,
		},
		{
			name: "unknown element between icons",
			xml:  `<base><BannerIconData><BannerIconGroup id="1"><Icon id="1"/><extra/><Icon id="2"/></BannerIconGroup></BannerIconData></base>`,
		},
		{
			name: "colors before groups",
			xml:  `<base><BannerIconData><BannerColors/><BannerIconGroup id="1"/></BannerIconData></base>`,
		},
		{
			name: "icons before backgrounds",
			xml:  `<base><BannerIconData><BannerIconGroup id="1"><Icon id="1"/><Background id="2"/></BannerIconGroup></BannerIconData></base>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := marshaller.Deserialize[core.BannerIcons](t.Context(), []byte(tt.xml))
			require.NoError(t, err)

			out, err := marshaller.Serialize(t.Context(), c)
			require.NoError(t, err)
			assert.Equal(t, tt.xml, string(out))

			view, err := bannericons.FromCore(c)
			require.NoError(t, err)

			viaView, err := bannericons.Serialize(t.Context(), view)
			require.NoError(t, err)
			assert.Equal(t, tt.xml, string(viaView))
		})
	}
}
