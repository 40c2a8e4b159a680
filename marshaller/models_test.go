package marshaller_test

import "github.com/speakeasy-api/gamexml/marshaller"

type testRoot struct {
	marshaller.CoreModel

	Type   marshaller.Node[string]
	Items  []*testItem
	Opt    marshaller.Node[*testOpt]
	Meshes []*testMesh
}

func (r *testRoot) XMLName() string { return "root" }

func (r *testRoot) UnmarshalElement(er *marshaller.ElementReader) {
	er.Attr("type", &r.Type)
	marshaller.Children(er, "item", &r.Items)
	marshaller.Child(er, "opt", &r.Opt)
	marshaller.ChildrenOf(er, []string{"a_mesh", "b_mesh"}, &r.Meshes)
}

func (r *testRoot) MarshalElement(w *marshaller.ElementWriter) {
	w.Attr("type", r.Type)
	marshaller.WriteChildren(w, "item", r.Items)
	marshaller.WriteChild(w, "opt", r.Opt)
	marshaller.WriteNamedChildren(w, r.Meshes)
}

type testItem struct {
	marshaller.CoreModel

	ID      marshaller.Node[string]
	Enabled marshaller.Node[string]
	Label   marshaller.Node[string]
}

func (i *testItem) UnmarshalElement(er *marshaller.ElementReader) {
	er.RequiredAttr("id", &i.ID)
	er.Attr("enabled", &i.Enabled)
	er.Text(&i.Label)
}

func (i *testItem) MarshalElement(w *marshaller.ElementWriter) {
	w.RequiredAttr("id", i.ID)
	w.Attr("enabled", i.Enabled)
	w.Text(i.Label)
}

type testOpt struct {
	marshaller.CoreModel
}

func (o *testOpt) UnmarshalElement(*marshaller.ElementReader) {}

func (o *testOpt) MarshalElement(*marshaller.ElementWriter) {}

type testMesh struct {
	marshaller.CoreModel

	Kind string
	Name marshaller.Node[string]
}

func (m *testMesh) ElementName() string { return m.Kind }

func (m *testMesh) UnmarshalElement(er *marshaller.ElementReader) {
	m.Kind = er.Name()
	er.Attr("name", &m.Name)
}

func (m *testMesh) MarshalElement(w *marshaller.ElementWriter) {
	w.Attr("name", m.Name)
}

type testRequiredRoot struct {
	marshaller.CoreModel

	Header marshaller.Node[*testOpt]
}

func (r *testRequiredRoot) XMLName() string { return "doc" }

func (r *testRequiredRoot) UnmarshalElement(er *marshaller.ElementReader) {
	marshaller.RequiredChild(er, "header", &r.Header)
}

func (r *testRequiredRoot) MarshalElement(w *marshaller.ElementWriter) {
	marshaller.WriteRequiredChild(w, "header", r.Header)
}
