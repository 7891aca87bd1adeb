package quiz

import "github.com/rocketscienceinc/eduwars-backend/internal/entity"

const (
	categoryMusic  = "Musik & Instrumente"
	categorySport  = "Sport & Action"
	categoryHome   = "Zu Hause & Kreativ"
	categorySocial = "Soziales & Orte"
)

// defaultQuestions is the built-in flashcard deck.
var defaultQuestions = []entity.Question{
	{ID: "m1", Category: categoryMusic, German: "Am Montag spiele ich Geige.", English: "On Monday I play the violin."},
	{ID: "m2", Category: categoryMusic, German: "Am Dienstag spiele ich Querflöte.", English: "On Tuesday I play the flute."},
	{ID: "m3", Category: categoryMusic, German: "Am Mittwoch spiele ich Klarinette.", English: "On Wednesday I play the clarinet."},
	{ID: "m4", Category: categoryMusic, German: "Am Donnerstag spiele ich Saxofon.", English: "On Thursday I play the saxophone."},
	{ID: "m5", Category: categoryMusic, German: "Am Freitag spiele ich Trompete.", English: "On Friday I play the trumpet."},
	{ID: "m6", Category: categoryMusic, German: "Am Samstag spiele ich Harfe.", English: "On Saturday I play the harp."},
	{ID: "m7", Category: categoryMusic, German: "Am Sonntag spiele ich Klavier.", English: "On Sunday I play the piano."},
	{ID: "m8", Category: categoryMusic, German: "Am Montag übe ich Schlagzeug.", English: "On Monday I practise the drums."},
	{ID: "m9", Category: categoryMusic, German: "Am Dienstag spiele ich Gitarre.", English: "On Tuesday I play the guitar."},
	{ID: "m10", Category: categoryMusic, German: "Am Mittwoch spiele ich Keyboard.", English: "On Wednesday I play the keyboard."},
	{ID: "m11", Category: categoryMusic, German: "Am Donnerstag spiele ich Blockflöte.", English: "On Thursday I play the recorder."},
	{ID: "m12", Category: categoryMusic, German: "Am Freitag singe ich im Chor.", English: "On Friday I sing in the choir."},
	{ID: "m13", Category: categoryMusic, German: "Am Samstag musiziere ich in der Band.", English: "On Saturday I make music in the band."},
	{ID: "m14", Category: categoryMusic, German: "Am Sonntag habe ich eine Probe.", English: "On Sunday I have a rehearsal."},
	{ID: "s1", Category: categorySport, German: "Am Montag schwimme ich im See.", English: "On Monday I swim in the lake."},
	{ID: "s2", Category: categorySport, German: "Am Dienstag rudere ich gern.", English: "On Tuesday I like rowing."},
	{ID: "s3", Category: categorySport, German: "Am Mittwoch surfe ich im Meer.", English: "On Wednesday I surf in the sea."},
	{ID: "s4", Category: categorySport, German: "Am Donnerstag tauche ich im Meer.", English: "On Thursday I dive in the sea."},
	{ID: "s5", Category: categorySport, German: "Am Freitag spiele ich Wasserball.", English: "On Friday I play water polo."},
	{ID: "s6", Category: categorySport, German: "Am Samstag angle ich mit meinem Opa.", English: "On Saturday I fish with my grandad."},
	{ID: "s7", Category: categorySport, German: "Am Sonntag mache ich Wasserski.", English: "On Sunday I do water-skiing."},
	{ID: "s8", Category: categorySport, German: "Am Montag spiele ich Fußball.", English: "On Monday I play football."},
	{ID: "s9", Category: categorySport, German: "Am Dienstag spiele ich Handball.", English: "On Tuesday I play handball."},
	{ID: "s10", Category: categorySport, German: "Am Mittwoch spiele ich Basketball.", English: "On Wednesday I play basketball."},
	{ID: "s11", Category: categorySport, German: "Am Donnerstag spiele ich Volleyball.", English: "On Thursday I play volleyball."},
	{ID: "s12", Category: categorySport, German: "Am Freitag mache ich Leichtathletik.", English: "On Friday I do athletics."},
	{ID: "s13", Category: categorySport, German: "Am Samstag reite ich auf dem Pony.", English: "On Saturday I go horse riding on the pony."},
	{ID: "s14", Category: categorySport, German: "Am Sonntag jogge ich im Park.", English: "On Sunday I jog in the park."},
	{ID: "s15", Category: categorySport, German: "Am Montag spiele ich Tischtennis.", English: "On Monday I play table tennis."},
	{ID: "s16", Category: categorySport, German: "Am Dienstag wandere ich in den Bergen.", English: "On Tuesday I hike in the mountains."},
	{ID: "s17", Category: categorySport, German: "Am Mittwoch klettere ich in der Halle.", English: "On Wednesday I climb in the hall."},
	{ID: "s18", Category: categorySport, German: "Am Donnerstag fahre ich Ski.", English: "On Thursday I go skiing."},
	{ID: "s19", Category: categorySport, German: "Am Freitag fahre ich Rad.", English: "On Friday I cycle."},
	{ID: "s20", Category: categorySport, German: "Am Samstag fahre ich Skateboard.", English: "On Saturday I ride a skateboard."},
	{ID: "s21", Category: categorySport, German: "Am Sonntag gehe ich eislaufen.", English: "On Sunday I go ice skating."},
	{ID: "s22", Category: categorySport, German: "Am Montag mache ich Yoga.", English: "On Monday I do yoga."},
	{ID: "s23", Category: categorySport, German: "Am Dienstag mache ich Karate.", English: "On Tuesday I do karate."},
	{ID: "s24", Category: categorySport, German: "Am Mittwoch tanze ich Ballett.", English: "On Wednesday I dance ballet."},
	{ID: "s25", Category: categorySport, German: "Am Donnerstag spiele ich Dart.", English: "On Thursday I play darts."},
	{ID: "s26", Category: categorySport, German: "Am Freitag gehe ich bowling.", English: "On Friday I go bowling."},
	{ID: "h1", Category: categoryHome, German: "Am Samstag spiele ich Theater.", English: "On Saturday I act / play theatre."},
	{ID: "h2", Category: categoryHome, German: "Am Sonntag fotografiere ich die Natur.", English: "On Sunday I take photos of nature."},
	{ID: "h3", Category: categoryHome, German: "Am Montag male ich ein Bild.", English: "On Monday I paint a picture."},
	{ID: "h4", Category: categoryHome, German: "Am Dienstag bastle ich gern.", English: "On Tuesday I like doing crafts."},
	{ID: "h5", Category: categoryHome, German: "Am Mittwoch koche ich für Freunde.", English: "On Wednesday I cook for friends."},
	{ID: "h6", Category: categoryHome, German: "Am Donnerstag backe ich einen Kuchen.", English: "On Thursday I bake a cake."},
	{ID: "h7", Category: categoryHome, German: "Am Freitag mache ich Gartenarbeit.", English: "On Friday I do gardening."},
	{ID: "h8", Category: categoryHome, German: "Am Samstag spiele ich Schach.", English: "On Saturday I play chess."},
	{ID: "h9", Category: categoryHome, German: "Am Sonntag sehe ich gern fern.", English: "On Sunday I like watching TV."},
	{ID: "h10", Category: categoryHome, German: "Am Montag lese ich eine Zeitung.", English: "On Monday I read a newspaper."},
	{ID: "p1", Category: categorySocial, German: "Am Dienstag treffe ich Freunde im Café.", English: "On Tuesday I meet friends in the café."},
	{ID: "p2", Category: categorySocial, German: "Am Mittwoch mache ich einen Ausflug.", English: "On Wednesday I go on an excursion."},
	{ID: "p3", Category: categorySocial, German: "Am Donnerstag gehen wir ins Kino.", English: "On Thursday we go to the cinema."},
	{ID: "p4", Category: categorySocial, German: "Am Freitag bin ich in der Disko.", English: "On Friday I am at the disco."},
}
